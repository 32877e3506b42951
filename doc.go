/*
Package hamming computes Hamming distances between equal-length inputs: the bitwise distance between bytes and byte slices, and the element-wise distance between slices of any comparable type, including strings compared rune by rune.

All functions are pure: they hold no state, perform no I/O, and are safe to call concurrently. A length mismatch is reported as an error value, never a panic, and there are no partial results.

# Concept

Hamming distance counts positions that differ. For bytes and byte slices the positions are bits (the population count of the XOR), which is the metric used for simhash fingerprints, DHT node IDs and binary feature vectors. For generic slices and strings the positions are elements, which is the classic "how many characters differ" measure.

# Key Features

  - One generic implementation: Distance works for any comparable element type, Strings is a thin rune-sequence wrapper, no duplicated per-container logic.
  - Unified error: every length failure is a LengthMismatchError carrying both observed lengths, matching ErrLengthMismatch under errors.Is.
  - Bounded results: Byte never exceeds 8, Bytes never exceeds 8*len, Distance never exceeds len.

# Usage

	package main

	import (
		"errors"
		"fmt"
		"log"

		"github.com/soleret/hamming"
	)

	func main() {
		// Bitwise distance between two bytes: 0x01 and 0x03 differ in one bit.
		fmt.Println(hamming.Byte(0x01, 0x03))

		// Bitwise distance across a whole slice.
		n, err := hamming.Bytes([]byte{0x01, 0x01}, []byte{0x03, 0xFF})
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(n) // 8

		// Element-wise distance between strings, rune by rune.
		n, err = hamming.Strings("Cat", "Hat")
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(n) // 1

		// Unequal lengths are an error, not a partial answer.
		_, err = hamming.Strings("kitten", "cat")
		if errors.Is(err, hamming.ErrLengthMismatch) {
			fmt.Println("not comparable")
		}
	}
*/
package hamming
