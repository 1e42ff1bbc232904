package catalog

import "github.com/cypheroneinc-oss/cb-bot-server-sub000/internal/domain"

// datasetV1 is the published v1 questionnaire. Published versions are frozen:
// edits here require bumping SupportedVersion and keeping the old slice.
var datasetV1 = []domain.Question{
	{
		Code:   "Q1",
		Prompt: "初対面の人が多い場に入ったとき、あなたは？",
		Choices: []domain.Choice{
			{Key: "a", Label: "自分から声をかけて輪を作る", Tags: domain.TagMap{MBTI: []string{"E"}, Sync: []string{"high_tension"}}},
			{Key: "b", Label: "聞き役にまわって様子を見る", Tags: domain.TagMap{MBTI: []string{"I"}}},
			{Key: "c", Label: "気の合いそうな一人とじっくり話す", Tags: domain.TagMap{MBTI: []string{"I"}, Sync: []string{"quiet_hot"}}},
		},
	},
	{
		Code:   "Q2",
		Prompt: "新しい企画を考えるとき、最初に浮かぶのは？",
		Choices: []domain.Choice{
			{Key: "a", Label: "まだ誰もやっていないアイデア", Tags: domain.TagMap{MBTI: []string{"N"}, ClusterHint: "creative"}},
			{Key: "b", Label: "実現までの手順と根拠", Tags: domain.TagMap{MBTI: []string{"T"}}},
			{Key: "c", Label: "それが誰の役に立つのか", Tags: domain.TagMap{Motivation: []string{"contribution"}, ClusterHint: "support"}},
		},
	},
	{
		Code:   "Q3",
		Prompt: "旅行の計画を立てるなら？",
		Choices: []domain.Choice{
			{Key: "a", Label: "事前にしっかり決めておきたい", Tags: domain.TagMap{MBTI: []string{"J"}, WorkStyle: []string{"structured"}}},
			{Key: "b", Label: "現地の気分で自由に動きたい", Tags: domain.TagMap{MBTI: []string{"P"}, WorkStyle: []string{"improv"}}},
			{Key: "c", Label: "大枠だけ決めて余白を残す", Tags: domain.TagMap{MBTI: []string{"J"}, Sync: []string{"relaxed"}}},
		},
	},
	{
		Code:   "Q4",
		Prompt: "気が進まない頼まれごとをされたら？",
		Choices: []domain.Choice{
			{Key: "a", Label: "相手に合わせて引き受けがち", Tags: domain.TagMap{Agreeableness: "high", Extraversion: "mid"}},
			{Key: "b", Label: "理由を伝えて断れる", Tags: domain.TagMap{Agreeableness: "mid", Extraversion: "mid"}},
			{Key: "c", Label: "自分の時間を優先してはっきり断る", Tags: domain.TagMap{Agreeableness: "low", Extraversion: "high", Motivation: []string{"autonomy"}}},
		},
	},
	{
		Code:   "Q5",
		Prompt: "会議で意見が割れたとき、あなたは？",
		Choices: []domain.Choice{
			{Key: "a", Label: "場の空気をまとめにいく", Tags: domain.TagMap{Agreeableness: "high", Extraversion: "high", Motivation: []string{"connection"}}},
			{Key: "b", Label: "データを並べて論点を整理する", Tags: domain.TagMap{Agreeableness: "mid", Extraversion: "low", MBTI: []string{"T"}, WorkStyle: []string{"logical"}}},
			{Key: "c", Label: "自分の案を通しにいく", Tags: domain.TagMap{Agreeableness: "low", Extraversion: "mid", Motivation: []string{"achieve"}}},
		},
	},
	{
		Code:   "Q6",
		Prompt: "休日のいちばんの充電方法は？",
		Choices: []domain.Choice{
			{Key: "a", Label: "人と会って騒ぐ", Tags: domain.TagMap{Extraversion: "high", Agreeableness: "mid", MBTI: []string{"E"}}},
			{Key: "b", Label: "一人の時間にひたる", Tags: domain.TagMap{Extraversion: "low", Agreeableness: "mid", MBTI: []string{"I"}}},
			{Key: "c", Label: "少人数でゆったり過ごす", Tags: domain.TagMap{Extraversion: "mid", Agreeableness: "high", Sync: []string{"relaxed"}}},
		},
	},
	{
		Code:   "Q7",
		Prompt: "仕事を任されたら、まず？",
		Choices: []domain.Choice{
			{Key: "a", Label: "とにかく速く形にする", Tags: domain.TagMap{WorkStyle: []string{"speed"}, Motivation: []string{"achieve"}, ClusterHint: "challenge"}},
			{Key: "b", Label: "段取りを組んでから進める", Tags: domain.TagMap{WorkStyle: []string{"structured"}, ClusterHint: "strategy"}},
			{Key: "c", Label: "丁寧さを最優先にする", Tags: domain.TagMap{WorkStyle: []string{"careful"}, ClusterHint: "support"}},
		},
	},
	{
		Code:   "Q8",
		Prompt: "予定が途中で崩れたら？",
		Choices: []domain.Choice{
			{Key: "a", Label: "その場のひらめきで立て直す", Tags: domain.TagMap{WorkStyle: []string{"improv", "speed"}, MBTI: []string{"P"}}},
			{Key: "b", Label: "計画を引き直してから動く", Tags: domain.TagMap{WorkStyle: []string{"structured", "logical"}, MBTI: []string{"J"}}},
			{Key: "c", Label: "影響範囲を確かめて慎重に進む", Tags: domain.TagMap{WorkStyle: []string{"careful", "logical"}}},
		},
	},
	{
		Code:   "Q9",
		Prompt: "迷ったとき、最後の決め手は？",
		Choices: []domain.Choice{
			{Key: "a", Label: "直感", Tags: domain.TagMap{WorkStyle: []string{"intuitive"}, MBTI: []string{"N"}, ClusterHint: "creative"}},
			{Key: "b", Label: "論理", Tags: domain.TagMap{WorkStyle: []string{"logical"}, MBTI: []string{"T"}}},
			{Key: "c", Label: "実績と前例", Tags: domain.TagMap{WorkStyle: []string{"careful"}, Motivation: []string{"security"}}},
		},
	},
	{
		Code:   "Q10",
		Prompt: "いちばんやる気が出る瞬間は？",
		Choices: []domain.Choice{
			{Key: "a", Label: "目標をやり切ったとき", Weight: 2, Tags: domain.TagMap{Motivation: []string{"achieve"}}},
			{Key: "b", Label: "認められ褒められたとき", Weight: 2, Tags: domain.TagMap{Motivation: []string{"approval"}}},
			{Key: "c", Label: "誰かの役に立てたとき", Weight: 2, Tags: domain.TagMap{Motivation: []string{"contribution"}}},
			{Key: "d", Label: "先の見通しが立っているとき", Weight: 2, Tags: domain.TagMap{Motivation: []string{"security"}}},
			{Key: "e", Label: "知らない世界に出会ったとき", Weight: 2, Tags: domain.TagMap{Motivation: []string{"curiosity"}}},
			{Key: "f", Label: "自分の裁量で動けるとき", Weight: 2, Tags: domain.TagMap{Motivation: []string{"autonomy"}}},
			{Key: "g", Label: "仲間と一体感を感じたとき", Weight: 2, Tags: domain.TagMap{Motivation: []string{"connection"}}},
			{Key: "h", Label: "自分の成長を実感したとき", Weight: 2, Tags: domain.TagMap{Motivation: []string{"growth"}}},
		},
	},
	{
		Code:   "Q11",
		Prompt: "いちばんストレスを感じるのは？",
		Choices: []domain.Choice{
			{Key: "a", Label: "強いプレッシャーをかけられる", Tags: domain.TagMap{NG: []string{"pressure"}}},
			{Key: "b", Label: "常に即レスを求められる", Tags: domain.TagMap{NG: []string{"instant_reply"}}},
			{Key: "c", Label: "「察して」と言われる", Tags: domain.TagMap{NG: []string{"read_between_lines"}}},
			{Key: "d", Label: "同じ作業の繰り返し", Tags: domain.TagMap{NG: []string{"monotony"}}},
			{Key: "e", Label: "裁量がまったくない", Tags: domain.TagMap{NG: []string{"no_autonomy"}}},
			{Key: "f", Label: "変化がまったくない", Tags: domain.TagMap{NG: []string{"no_change"}}},
			{Key: "g", Label: "特にない", Tags: domain.TagMap{}},
		},
	},
	{
		Code:   "Q12",
		Prompt: "チームでのあなたのノリは？",
		Choices: []domain.Choice{
			{Key: "a", Label: "先頭でテンションを上げる", Tags: domain.TagMap{Sync: []string{"high_tension"}, MBTI: []string{"E"}}},
			{Key: "b", Label: "自然体でまわりに合わせる", Tags: domain.TagMap{Sync: []string{"natural"}}},
			{Key: "c", Label: "静かに熱く燃える", Tags: domain.TagMap{Sync: []string{"quiet_hot"}}},
			{Key: "d", Label: "冷静に論点を整理する", Tags: domain.TagMap{Sync: []string{"logical_cool"}, MBTI: []string{"T"}}},
			{Key: "e", Label: "まったり場を和ませる", Tags: domain.TagMap{Sync: []string{"relaxed"}}},
			{Key: "f", Label: "ツッコミで場を回す", Tags: domain.TagMap{Sync: []string{"tsukkomi"}}},
			{Key: "g", Label: "その場による", Tags: domain.TagMap{}},
		},
	},
}
