// File: pattern.go
// Title: Compiled Pattern Cache
// Description: Compiles regular expressions used by the retaining splitters
//              and keeps a bounded set of them for reuse.
// Author: msto63
// Version: v0.2.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.2.0: Initial implementation

package stringx

import (
	"regexp"
	"sync"

	"github.com/msto63/commons/core/errors"
)

// MaxCachedPatterns bounds the number of compiled expressions kept
const MaxCachedPatterns = 256

var (
	patternCache = make(map[string]*regexp.Regexp)
	patternMu    sync.RWMutex
)

// CompilePattern compiles expr with Go RE2 syntax and caches the result.
// Invalid expressions yield a STRINGX_INVALID_PATTERN error wrapping the
// *regexp/syntax.Error.
func CompilePattern(expr string) (*regexp.Regexp, error) {
	patternMu.RLock()
	re, ok := patternCache[expr]
	patternMu.RUnlock()
	if ok {
		return re, nil
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, errors.StringxInvalidPattern(expr, err)
	}

	patternMu.Lock()
	defer patternMu.Unlock()
	if cached, exists := patternCache[expr]; exists {
		return cached, nil
	}
	if len(patternCache) >= MaxCachedPatterns {
		for k := range patternCache {
			delete(patternCache, k)
			if len(patternCache) <= MaxCachedPatterns/2 {
				break
			}
		}
	}
	patternCache[expr] = re
	return re, nil
}

// MustCompilePattern is like CompilePattern but panics on invalid input
func MustCompilePattern(expr string) *regexp.Regexp {
	re, err := CompilePattern(expr)
	if err != nil {
		panic(err)
	}
	return re
}
