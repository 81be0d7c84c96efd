package model_test

import (
	"testing"

	"github.com/m-mizutani/codefetch/pkg/domain/model"
	"github.com/m-mizutani/gt"
)

func TestQuery_Term(t *testing.T) {
	t.Run("without language", func(t *testing.T) {
		q := model.Query{Text: "import tensorflow"}
		gt.Equal(t, q.Term(), "import tensorflow")
	})

	t.Run("with language qualifier", func(t *testing.T) {
		q := model.Query{Text: "import tensorflow", Language: "python"}
		gt.Equal(t, q.Term(), "import tensorflow language:python")
	})
}

func TestSearchResult_Key(t *testing.T) {
	r := model.SearchResult{Repository: "org/repo", Path: "src/app.py"}
	gt.Equal(t, r.Key(), "org/repo/src/app.py")
}

func TestTermValidator(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		content string
		want    bool
	}{
		{
			name:    "exact phrase match",
			query:   "import tensorflow",
			content: "import tensorflow as tf\n",
			want:    true,
		},
		{
			name:    "case insensitive phrase match",
			query:   "Import TensorFlow",
			content: "IMPORT TENSORFLOW\n",
			want:    true,
		},
		{
			name:    "all terms present without phrase",
			query:   "tensorflow keras",
			content: "from keras import layers\nimport tensorflow\n",
			want:    true,
		},
		{
			name:    "missing term rejects",
			query:   "tensorflow keras",
			content: "import tensorflow\n",
			want:    false,
		},
		{
			name:    "empty query accepts everything",
			query:   "",
			content: "anything",
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validate := model.TermValidator(tt.query)
			gt.Equal(t, validate(tt.content), tt.want)
		})
	}
}
