// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package normalize turns free-form handwritten text into a canonical,
// title-cased cookbook entry name.
//
// Hyphens and underscores count as word separators, anything that is not an
// ASCII letter or a space is dropped, runs of spaces collapse to one, and
// every word is title-cased:
//
//	normalize.Name("cool- recipe_42!!") // "Cool Recipe", nil
//	normalize.Name("123")               // "", ErrInvalidName
package normalize

import (
	"errors"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrInvalidName is returned when nothing readable is left after normalization.
var ErrInvalidName = errors.New("no readable characters in name")

// Name returns the canonical form of raw, or ErrInvalidName when the result is empty.
func Name(raw string) (string, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r == '-' || r == '_' || r == ' ':
			return ' '
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			return r
		default:
			return -1
		}
	}, raw)

	words := strings.Fields(cleaned)
	if len(words) == 0 {
		return "", ErrInvalidName
	}

	// a Caser keeps state between calls, so each call gets its own
	caser := cases.Title(language.English)
	return caser.String(strings.Join(words, " ")), nil
}
