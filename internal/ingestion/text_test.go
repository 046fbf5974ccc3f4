package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"crlf", "a\r\nb\r\n", "a\nb"},
		{"lone cr", "a\rb", "a\nb"},
		{"trims", "  \n# Title\n  body  \n\n", "# Title\n  body"},
		{"bom", "\ufeffhello", "hello"},
		{"keeps inner spacing", "a    b", "a    b"},
		{"only whitespace", " \r\n\t ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestCleanExtracted(t *testing.T) {
	in := "# 张三  \n\n\n\n## 工作经历\t\n- Go   \n  - nested\n"
	assert.Equal(t, "# 张三\n\n## 工作经历\n- Go\n  - nested", CleanExtracted(in))
}

func TestCleanExtracted_Empty(t *testing.T) {
	assert.Empty(t, CleanExtracted("   \n  \n"))
}
