package services

import (
	"regexp"
	"sync"
)

var BannedWords = []string{
	"fuck", "fucking", "fucker", "shit", "shitty", "bullshit",
	"ass", "asshole", "bastard", "bitch", "cunt",
	"nigger", "nigga", "chink", "spic", "kike", "faggot", "fag",
	"retard", "retarded", "tranny",
	"spam", "scam", "phishing", "malware",
}

// ContentFilter screens free-text fields (report descriptions, access
// request messages) for banned language before they are persisted.
type ContentFilter struct {
	bannedWordRegexps []*regexp.Regexp
	compiled          bool
	mu                sync.RWMutex
}

func NewContentFilter() *ContentFilter {
	cf := &ContentFilter{}
	cf.compilePatterns()
	return cf
}

func (cf *ContentFilter) compilePatterns() {
	cf.mu.Lock()
	defer cf.mu.Unlock()
	if cf.compiled {
		return
	}

	cf.bannedWordRegexps = make([]*regexp.Regexp, 0, len(BannedWords))
	for _, word := range BannedWords {
		pattern := `(?i)\b` + regexp.QuoteMeta(word) + `\b`
		re, err := regexp.Compile(pattern)
		if err == nil {
			cf.bannedWordRegexps = append(cf.bannedWordRegexps, re)
		}
	}
	cf.compiled = true
}

func (cf *ContentFilter) ContainsProfanity(text string) bool {
	cf.mu.RLock()
	defer cf.mu.RUnlock()
	if text == "" {
		return false
	}
	for _, re := range cf.bannedWordRegexps {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}
