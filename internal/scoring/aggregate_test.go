package scoring

import (
	"errors"
	"testing"

	"github.com/cypheroneinc-oss/cb-bot-server-sub000/internal/domain"
)

func testQuestions() []domain.Question {
	return []domain.Question{
		{
			Code:   "T1",
			Prompt: "first",
			Choices: []domain.Choice{
				{Key: "a", Label: "A", Tags: domain.TagMap{MBTI: []string{"E"}, Sync: []string{"high_tension"}}},
				{Key: "b", Label: "B", Tags: domain.TagMap{MBTI: []string{"I"}}},
			},
		},
		{
			Code:   "T2",
			Prompt: "second",
			Choices: []domain.Choice{
				{Key: "a", Label: "A", Weight: 2, Tags: domain.TagMap{Motivation: []string{"achieve"}, ClusterHint: "challenge"}},
				{Key: "b", Label: "B", Tags: domain.TagMap{Agreeableness: "high", Extraversion: "low"}},
			},
		},
	}
}

func TestAggregateHappyPath(t *testing.T) {
	questions := testQuestions()
	answers := []domain.Answer{
		{QuestionCode: "T1", ChoiceKey: "a"},
		{QuestionCode: "T2", ChoiceKey: "a"},
	}

	selection, counts, err := Aggregate(questions, answers)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(selection) != 2 {
		t.Fatalf("expected 2 selected answers, got %d", len(selection))
	}
	if selection[0].Question.Code != "T1" || selection[0].Choice.Key != "a" {
		t.Fatalf("unexpected first selection: %+v", selection[0])
	}

	if counts.MBTI["E"] != 1 {
		t.Fatalf("expected E count 1, got %d", counts.MBTI["E"])
	}
	if counts.Sync["high_tension"] != 1 {
		t.Fatalf("expected high_tension count 1, got %d", counts.Sync["high_tension"])
	}
	if counts.Motivation["achieve"] != 2 {
		t.Fatalf("expected achieve count 2 (weighted choice), got %d", counts.Motivation["achieve"])
	}
	if counts.ClusterHint["challenge"] != 2 {
		t.Fatalf("expected challenge hint count 2, got %d", counts.ClusterHint["challenge"])
	}
}

func TestAggregateBigFiveDimensions(t *testing.T) {
	questions := testQuestions()
	answers := []domain.Answer{
		{QuestionCode: "T1", ChoiceKey: "b"},
		{QuestionCode: "T2", ChoiceKey: "b"},
	}

	_, counts, err := Aggregate(questions, answers)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if counts.Agreeableness["high"] != 1 {
		t.Fatalf("expected agreeableness high count 1, got %d", counts.Agreeableness["high"])
	}
	if counts.Extraversion["low"] != 1 {
		t.Fatalf("expected extraversion low count 1, got %d", counts.Extraversion["low"])
	}
}

func TestAggregateWrongCount(t *testing.T) {
	questions := testQuestions()
	answers := []domain.Answer{{QuestionCode: "T1", ChoiceKey: "a"}}

	_, _, err := Aggregate(questions, answers)
	if !errors.Is(err, ErrInvalidShape) {
		t.Fatalf("expected ErrInvalidShape for short answer set, got %v", err)
	}
}

func TestAggregateDuplicateQuestion(t *testing.T) {
	questions := testQuestions()
	answers := []domain.Answer{
		{QuestionCode: "T1", ChoiceKey: "a"},
		{QuestionCode: "T1", ChoiceKey: "b"},
	}

	_, _, err := Aggregate(questions, answers)
	if !errors.Is(err, ErrInvalidShape) {
		t.Fatalf("expected ErrInvalidShape for duplicate question, got %v", err)
	}
}

func TestAggregateUnknownQuestion(t *testing.T) {
	questions := testQuestions()
	answers := []domain.Answer{
		{QuestionCode: "T1", ChoiceKey: "a"},
		{QuestionCode: "T9", ChoiceKey: "a"},
	}

	_, _, err := Aggregate(questions, answers)
	if !errors.Is(err, ErrInvalidShape) {
		t.Fatalf("expected ErrInvalidShape for unknown question, got %v", err)
	}
}

func TestAggregateUnknownChoice(t *testing.T) {
	questions := testQuestions()
	answers := []domain.Answer{
		{QuestionCode: "T1", ChoiceKey: "z"},
		{QuestionCode: "T2", ChoiceKey: "a"},
	}

	_, _, err := Aggregate(questions, answers)
	if !errors.Is(err, ErrInvalidShape) {
		t.Fatalf("expected ErrInvalidShape for unknown choice, got %v", err)
	}
}

func TestAggregateMissingReferences(t *testing.T) {
	questions := testQuestions()
	answers := []domain.Answer{
		{QuestionCode: "", ChoiceKey: "a"},
		{QuestionCode: "T2", ChoiceKey: ""},
	}

	_, _, err := Aggregate(questions, answers)
	if !errors.Is(err, ErrInvalidShape) {
		t.Fatalf("expected ErrInvalidShape for missing references, got %v", err)
	}
}
