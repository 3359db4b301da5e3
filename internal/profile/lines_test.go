package profile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateLines(t *testing.T) {
	testCases := []struct {
		name     string
		template Template
		primary  string
		expected []Line
	}{
		{
			name:     "empty template produces no lines",
			template: Template{},
			expected: []Line{},
		},
		{
			name: "single flat section drops its trailing spacer",
			template: Template{
				{Key: "Contact", Value: Group{{Key: "LinkedIn", Value: Scalar("octocat")}}},
			},
			expected: []Line{
				TextLine(" - Contact" + strings.Repeat("-", 10-7-1) + " "),
				PairLine("LinkedIn:", "octocat "),
			},
		},
		{
			name: "nested groups in the primary section get dotted labels and one spacer each",
			template: Template{
				{Key: "me", Value: Group{
					{Key: "System", Value: Group{
						{Key: "OS", Value: Scalar("Linux")},
						{Key: "IDE", Value: Scalar("vim")},
					}},
					{Key: "Real", Value: Group{{Key: "Lang", Value: Scalar("English")}}},
				}},
				{Key: "Other", Value: Group{
					{Key: "Tools", Value: Group{{Key: "Cloud", Value: Scalar("AWS")}}},
				}},
			},
			primary: "me",
			expected: []Line{
				TextLine(" - me------- "),
				PairLine("System.OS:", "Linux "),
				PairLine("System.IDE:", "vim "),
				TextLine(Spacer),
				PairLine("Real.Lang:", "English "),
				TextLine(Spacer),
				TextLine(" - Other---- "),
				PairLine("Cloud:", "AWS "),
			},
		},
		{
			name: "mixed section only gets the nested group spacer",
			template: Template{
				{Key: "Mixed", Value: Group{
					{Key: "Flat", Value: Scalar("1")},
					{Key: "Deep", Value: Group{{Key: "Leaf", Value: Scalar("2")}}},
					{Key: "After", Value: Scalar("3")},
				}},
				{Key: "Next", Value: Group{{Key: "K", Value: Scalar("v")}}},
			},
			expected: []Line{
				TextLine(" - Mixed---- "),
				PairLine("Flat:", "1 "),
				PairLine("Leaf:", "2 "),
				TextLine(Spacer),
				PairLine("After:", "3 "),
				TextLine(" - Next----- "),
				PairLine("K:", "v "),
			},
		},
		{
			name: "scalar section uses its name as label without a colon",
			template: Template{
				{Key: "Motto", Value: Scalar("ship it")},
				{Key: "Contact", Value: Group{{Key: "Mail", Value: Scalar("a@b.c")}}},
			},
			expected: []Line{
				TextLine(" - Motto---- "),
				PairLine("Motto", "ship it "),
				TextLine(Spacer),
				TextLine(" - Contact-- "),
				PairLine("Mail:", "a@b.c "),
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			lines := GenerateLines(tc.template, 10, tc.primary)
			if len(tc.expected) == 0 {
				assert.Empty(t, lines)
				return
			}
			assert.Equal(t, tc.expected, lines)
		})
	}
}

func TestGenerateLines_LongSectionNameHasNoFill(t *testing.T) {
	lines := GenerateLines(Template{{Key: "a-very-long-section", Value: Scalar("x")}}, 5, "")
	require.NotEmpty(t, lines)
	assert.Equal(t, " - a-very-long-section ", lines[0].Text)
}

func TestGenerateLines_DefaultTemplate(t *testing.T) {
	lines := GenerateLines(DefaultTemplate(), DefaultWidth, "octocat@github")

	require.NotEmpty(t, lines)
	assert.Equal(t, " - octocat@github"+strings.Repeat("-", DefaultWidth-len("octocat@github")-1)+" ", lines[0].Text)
	assert.Equal(t, PairLine("System.OS:", "Linux / macOS "), lines[1])
	assert.True(t, lines[len(lines)-1].IsPair(), "trailing spacer should be dropped")
	assert.Equal(t, "Lines of Code:", lines[len(lines)-1].Label)
}
