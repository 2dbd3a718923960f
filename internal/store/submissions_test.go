package store

import (
	"reflect"
	"testing"
)

func TestNormalizeQuestions(t *testing.T) {
	tests := []struct {
		name  string
		input []Question
		want  []Question
	}{
		{
			name:  "empty slice",
			input: nil,
			want:  []Question{},
		},
		{
			name: "complete question untouched",
			input: []Question{
				{Question: "Q1", Answer: "A1", Context: "C1"},
			},
			want: []Question{
				{Question: "Q1", Answer: "A1", Context: "C1"},
			},
		},
		{
			name: "missing fields get sentinels",
			input: []Question{
				{Question: "Q1"},
				{Answer: "A2"},
				{},
			},
			want: []Question{
				{Question: "Q1", Answer: NoAnswer, Context: NoContext},
				{Question: NoQuestion, Answer: "A2", Context: NoContext},
				{Question: NoQuestion, Answer: NoAnswer, Context: NoContext},
			},
		},
		{
			name: "order preserved",
			input: []Question{
				{Question: "first", Answer: "a", Context: "c"},
				{Question: "second", Answer: "b", Context: "d"},
			},
			want: []Question{
				{Question: "first", Answer: "a", Context: "c"},
				{Question: "second", Answer: "b", Context: "d"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeQuestions(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("NormalizeQuestions() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
