// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package layout

import "iter"

// Comma is the separator placed between members.
const Comma = ", "

// Separate yields each item with the separator that follows it. The last
// item gets an empty separator, so n items produce n-1 separators.
func Separate[T any](items []T, sep string) iter.Seq2[T, string] {
	return func(yield func(T, string) bool) {
		for i, item := range items {
			s := sep
			if i == len(items)-1 {
				s = ""
			}
			if !yield(item, s) {
				return
			}
		}
	}
}

// CommaSeparate is Separate with Comma.
func CommaSeparate[T any](items []T) iter.Seq2[T, string] {
	return Separate(items, Comma)
}
