// Copyright 2026 The CraftMaster Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import "strings"

// MaxInterpolationDepth bounds the chain of nested ${Section:Key} references
const MaxInterpolationDepth = 10

// interpolate substitutes ${Key} and ${Section:Key} references in value.
// A bare ${Key} refers to the section the value belongs to, "$$" is a literal '$'.
func (c *Config) interpolate(section, key, value string, depth int) (string, error) {
	if !strings.Contains(value, "$") {
		return value, nil
	}
	if depth > MaxInterpolationDepth {
		return "", ErrInterpolation{Section: section, Key: key, Reason: "too many nested references, is there a cycle?"}
	}

	var sb strings.Builder
	rest := value
	for {
		idx := strings.IndexByte(rest, '$')
		if idx < 0 {
			sb.WriteString(rest)
			return sb.String(), nil
		}
		sb.WriteString(rest[:idx])
		rest = rest[idx:]
		if len(rest) < 2 {
			return "", ErrInterpolation{Section: section, Key: key, Reason: "'$' must be followed by '$' or '{'"}
		}

		switch rest[1] {
		case '$':
			sb.WriteByte('$')
			rest = rest[2:]
		case '{':
			end := strings.IndexByte(rest, '}')
			if end < 0 {
				return "", ErrInterpolation{Section: section, Key: key, Reason: "unterminated reference " + rest}
			}
			ref := rest[2:end]
			rest = rest[end+1:]

			refSection, refKey := section, ref
			if strings.Count(ref, ":") > 1 {
				return "", ErrInterpolation{Section: section, Key: key, Reason: "more than one ':' in reference ${" + ref + "}"}
			}
			if s, k, ok := strings.Cut(ref, ":"); ok {
				refSection, refKey = s, k
			}
			raw, ok := c.rawValue(refSection, refKey)
			if !ok {
				return "", ErrInterpolation{Section: section, Key: key, Err: ErrMissingKey{Section: refSection, Key: refKey}}
			}
			resolved, err := c.interpolate(refSection, refKey, raw, depth+1)
			if err != nil {
				return "", err
			}
			sb.WriteString(resolved)
		default:
			return "", ErrInterpolation{Section: section, Key: key, Reason: "'$' must be followed by '$' or '{', found " + rest}
		}
	}
}
