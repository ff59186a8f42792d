package taskparse_test

import (
	"strings"
	"testing"
	"time"

	"smartodo/pkg/taskparse"
)

// Monday, June 10, 2024.
var refNow = time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantTitle string
		wantDue   *time.Time
		wantStart string
		wantEnd   string
		wantCat   taskparse.Category
		wantLinks []string
	}{
		{
			name:      "tomorrow meeting",
			text:      "明天开会",
			wantTitle: "开会",
			wantDue:   ptr(date(2024, 6, 11)),
			wantCat:   taskparse.CategoryWork,
		},
		{
			name:      "next monday from a monday is a week out",
			text:      "下周一交作业",
			wantTitle: "交作业",
			wantDue:   ptr(date(2024, 6, 17)),
			wantCat:   taskparse.CategoryStudy,
		},
		{
			name:      "numeric date with morning hour",
			text:      "8.14 上午9点体检",
			wantTitle: "体检",
			wantDue:   ptr(date(2024, 8, 14)),
			wantStart: "09:00",
			wantCat:   taskparse.CategoryPersonal,
		},
		{
			name:      "afternoon hour range",
			text:      "下午2点到4点开会",
			wantTitle: "开会",
			wantStart: "14:00",
			wantEnd:   "16:00",
			wantCat:   taskparse.CategoryWork,
		},
		{
			name:      "link removed from details and kept in order",
			text:      "明天开会 https://example.com/agenda 讨论季度目标",
			wantTitle: "开会 讨论季度目标",
			wantDue:   ptr(date(2024, 6, 11)),
			wantCat:   taskparse.CategoryWork,
			wantLinks: []string{"https://example.com/agenda"},
		},
		{
			name:      "no temporal phrase leaves date and time unset",
			text:      "买牛奶",
			wantTitle: "买牛奶",
			wantCat:   taskparse.CategoryPersonal,
		},
		{
			name:      "in three days",
			text:      "3天后交房租",
			wantTitle: "交房租",
			wantDue:   ptr(date(2024, 6, 13)),
			wantCat:   taskparse.CategoryOther,
		},
		{
			name:      "explicit later year via dashed date",
			text:      "2025-1-1 年度计划",
			wantTitle: "年度计划",
			wantDue:   ptr(date(2025, 1, 1)),
			wantCat:   taskparse.CategoryOther,
		},
		{
			name:      "noon phrase",
			text:      "中午吃饭",
			wantTitle: "吃饭",
			wantStart: "12:00",
			wantCat:   taskparse.CategoryPersonal,
		},
		{
			name:      "evening single hour",
			text:      "晚上8点看电影",
			wantTitle: "看电影",
			wantStart: "20:00",
			wantCat:   taskparse.CategoryOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := taskparse.Parse(tt.text, refNow)

			if got.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", got.Title, tt.wantTitle)
			}
			if got.Description != tt.text {
				t.Errorf("Description = %q, want raw input", got.Description)
			}
			if got.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", got.Category, tt.wantCat)
			}

			switch {
			case tt.wantDue == nil && got.DueDate != nil:
				t.Errorf("DueDate = %v, want nil", got.DueDate)
			case tt.wantDue != nil && got.DueDate == nil:
				t.Errorf("DueDate = nil, want %v", tt.wantDue)
			case tt.wantDue != nil && !got.DueDate.Equal(*tt.wantDue):
				t.Errorf("DueDate = %v, want %v", got.DueDate, tt.wantDue)
			}

			if gotStart := timeString(got.StartTime); gotStart != tt.wantStart {
				t.Errorf("StartTime = %q, want %q", gotStart, tt.wantStart)
			}
			if gotEnd := timeString(got.EndTime); gotEnd != tt.wantEnd {
				t.Errorf("EndTime = %q, want %q", gotEnd, tt.wantEnd)
			}

			if len(got.Links) != len(tt.wantLinks) {
				t.Fatalf("Links = %v, want %v", got.Links, tt.wantLinks)
			}
			for i, link := range tt.wantLinks {
				if got.Links[i] != link {
					t.Errorf("Links[%d] = %q, want %q", i, got.Links[i], link)
				}
			}
		})
	}
}

func TestParseLinksVerbatimAndAbsentFromDetails(t *testing.T) {
	text := "看 https://a.example/1 再看 https://a.example/1 和 http://b.example/2"
	got := taskparse.Parse(text, refNow)

	want := []string{"https://a.example/1", "https://a.example/1", "http://b.example/2"}
	if len(got.Links) != len(want) {
		t.Fatalf("Links = %v, want %v (duplicates preserved)", got.Links, want)
	}
	for i := range want {
		if got.Links[i] != want[i] {
			t.Errorf("Links[%d] = %q, want %q", i, got.Links[i], want[i])
		}
	}
	for _, link := range want {
		if strings.Contains(got.Details, link) {
			t.Errorf("Details still contains link %q: %q", link, got.Details)
		}
	}
}

func TestParseDeterministicOnDetails(t *testing.T) {
	first := taskparse.Parse("明天下午3点 https://x.example 开项目会", refNow)

	// Re-parsing the details output (links already removed) is safe and
	// deterministic, though not necessarily feature-equivalent.
	second := taskparse.Parse(first.Details, refNow)
	third := taskparse.Parse(first.Details, refNow)

	if second.Title != third.Title || second.Category != third.Category {
		t.Errorf("re-parse not deterministic: %+v vs %+v", second, third)
	}
	if len(second.Links) != 0 {
		t.Errorf("details should carry no links, got %v", second.Links)
	}
}

func TestParseTitleNeverEmptyAndBounded(t *testing.T) {
	inputs := []string{
		"明天",
		"了",
		"   x   ",
		"请记得帮我把下周三上午10点的部门季度规划评审会议材料全部打印好并且提前十分钟送到三楼大会议室",
		"https://only.example/link",
		"prepare the quarterly business review presentation for the leadership meeting",
	}

	for _, in := range inputs {
		got := taskparse.Parse(in, refNow)
		if got.Title == "" {
			t.Errorf("Parse(%q).Title is empty", in)
		}
		if n := len([]rune(got.Title)); n > 25 {
			t.Errorf("Parse(%q).Title = %q has %d runes, limit 25", in, got.Title, n)
		}
		if got.Category == "" {
			t.Errorf("Parse(%q).Category unset", in)
		}
	}
}

func ptr(t time.Time) *time.Time { return &t }

func timeString(t *taskparse.TimeOfDay) string {
	if t == nil {
		return ""
	}
	return t.String()
}
