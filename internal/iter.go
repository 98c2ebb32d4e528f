// Package internal holds helpers shared by the zmachine packages.
package internal

import (
	"iter"
)

// Concat joins name, value sequences, stopping early when the consumer does.
func Concat[K any, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, seq := range seqs {
			for k, v := range seq {
				if !yield(k, v) {
					return
				}
			}
		}
	}
}
