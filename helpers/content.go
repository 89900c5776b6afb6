package helpers

import (
	"html/template"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sunwei/pagegen/common/loggers"
	"github.com/sunwei/pagegen/config"
	"github.com/sunwei/pagegen/markup"
	"github.com/sunwei/pagegen/markup/converter"
	"github.com/sunwei/pagegen/markup/markup_config"
)

// NewContentSpec returns a ContentSpec initialized
// with the appropriate fields from the given config.Provider.
func NewContentSpec(cfg config.Provider, logger loggers.Logger, prettyURLs bool) (*ContentSpec, error) {
	mcfg, err := markup_config.Decode(cfg)
	if err != nil {
		return nil, err
	}

	spec := &ContentSpec{
		Cfg:           cfg,
		summaryLength: 70,
		enableEmoji:   mcfg.EnableEmoji,
	}

	if cfg.IsSet("summaryLength") {
		spec.summaryLength = cfg.GetInt("summaryLength")
	}

	converterProvider, err := markup.NewConverterProvider(converter.ProviderConfig{
		MarkupConfig: mcfg,
		Cfg:          cfg,
		Logger:       logger,
		PrettyURLs:   prettyURLs,
	})
	if err != nil {
		return nil, err
	}

	spec.Converters = converterProvider

	return spec, nil
}

// ContentSpec provides functionality to render markdown content.
type ContentSpec struct {
	Converters markup.ConverterProvider
	Cfg        config.Provider

	// SummaryLength is the length of the summary, in words, extracted from a content.
	summaryLength int

	enableEmoji bool
}

// ResolveMarkup returns the registered converter name for in, or empty if
// there is none.
func (c *ContentSpec) ResolveMarkup(in string) string {
	in = strings.ToLower(in)
	switch in {
	case "md", "markdown", "mdown":
		return "markdown"
	case "html", "htm":
		return "html"
	default:
		if conv := c.Converters.Get(in); conv != nil {
			return conv.Name()
		}
	}
	return ""
}

// PostProcess applies the content wide transformations that do not depend
// on the markup, e.g. emoji replacement.
func (c *ContentSpec) PostProcess(content []byte) []byte {
	if c.enableEmoji {
		content = Emojify(content)
	}
	return content
}

// BytesToHTML converts bytes to type template.HTML.
func BytesToHTML(b []byte) template.HTML {
	return template.HTML(string(b))
}

var stripHTMLRe = regexp.MustCompile(`<[^>]*>`)

// StripHTML returns s without HTML tags, with block level breaks turned into
// spaces. Entities are kept, the result is still HTML.
func StripHTML(s string) string {
	if !strings.ContainsAny(s, "<>") {
		return s
	}
	s = strings.NewReplacer("\n", " ", "</p>", "\n", "<br>", "\n", "<br />", "\n").Replace(s)
	s = stripHTMLRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// TruncateWordsToWholeSentence takes content and truncates to whole sentence
// limited by max number of words. It also returns whether it is truncated.
func (c *ContentSpec) TruncateWordsToWholeSentence(s string) (string, bool) {
	var (
		wordCount     = 0
		lastWordIndex = -1
	)

	for i, r := range s {
		if unicode.IsSpace(r) {
			wordCount++
			lastWordIndex = i

			if wordCount >= c.summaryLength {
				break
			}

		}
	}

	if lastWordIndex == -1 {
		return s, false
	}

	endIndex := -1

	for j, r := range s[lastWordIndex:] {
		if isEndOfSentence(r) {
			endIndex = j + lastWordIndex + utf8.RuneLen(r)
			break
		}
	}

	if endIndex == -1 {
		return s, false
	}

	return strings.TrimSpace(s[:endIndex]), endIndex < len(s)
}

func isEndOfSentence(r rune) bool {
	return r == '.' || r == '?' || r == '!' || r == '"' || r == '\n'
}

// TotalWords counts instance of one or more consecutive white space
// characters, as defined by unicode.IsSpace, in s.
// This is a cheaper way of word counting than the obvious len(strings.Fields(s)).
func TotalWords(s string) int {
	n := 0
	inWord := false
	for _, r := range s {
		wasInWord := inWord
		inWord = !unicode.IsSpace(r)
		if inWord && !wasInWord {
			n++
		}
	}
	return n
}
