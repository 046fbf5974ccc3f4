package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		url      string
		expected Platform
	}{
		{"https://job-boards.greenhouse.io/doordashusa/jobs/7063751", PlatformGreenhouse},
		{"https://boards.greenhouse.io/company/jobs/123", PlatformGreenhouse},
		{"https://jobs.lever.co/company/job-id", PlatformLever},
		{"https://acme.wd5.myworkdayjobs.com/en-US/careers/job/123", PlatformWorkday},
		{"https://www.zhipin.com/job_detail/abc.html", PlatformBoss},
		{"https://www.lagou.com/wn/jobs/123.html", PlatformLagou},
		{"https://www.liepin.com/job/123.shtml", PlatformLiepin},
		{"https://notgreenhouse.io.example.com/jobs", PlatformUnknown},
		{"https://example.com/careers", PlatformUnknown},
		{"::not a url", PlatformUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectPlatform(tt.url))
		})
	}
}

func TestPlatformContentSelectors(t *testing.T) {
	assert.Equal(t, ".job__description", PlatformContentSelectors(PlatformGreenhouse)[0])
	assert.Equal(t, ".job-sec-text", PlatformContentSelectors(PlatformBoss)[0])
	assert.Equal(t, JobPostingSelectors(), PlatformContentSelectors(PlatformUnknown))
}

func TestPlatformNoiseSelectors(t *testing.T) {
	for _, p := range []Platform{PlatformGreenhouse, PlatformLever, PlatformWorkday, PlatformBoss, PlatformUnknown} {
		noise := PlatformNoiseSelectors(p)
		assert.Contains(t, noise, "form", p)
	}
	assert.Contains(t, PlatformNoiseSelectors(PlatformLagou), ".job-sider")
}
