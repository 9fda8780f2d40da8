package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeTitle(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"The Hobbit (Illustrated)", "the hobbit"},
		{"  Dune  ", "dune"},
		{"The Fellowship of the Ring (The Lord of the Rings, #1)", "the fellowship of the ring"},
		{"", ""},
	}
	for _, test := range testCases {
		require.Equal(t, test.expected, NormalizeTitle(test.input))
	}
}

func TestNormalizeAuthor(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"J.R.R. Tolkien (Goodreads Author)", "j.r.r. tolkien"},
		{"by Frank Herbert", "by frank herbert"},
		{"Written by Frank Herbert", "written frank herbert"},
		{"", ""},
		{"  Ursula K. Le Guin  ", "ursula k. le guin"},
	}
	for _, test := range testCases {
		require.Equal(t, test.expected, NormalizeAuthor(test.input))
	}
}

func TestNormalizeString(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"The  Hobbit: There & Back Again!", "the hobbit there back again"},
		{"", ""},
		{"   ", ""},
		{"a_b", "a_b"},
	}
	for _, test := range testCases {
		require.Equal(t, test.expected, NormalizeString(test.input))
	}
}

func TestCleanTitle(t *testing.T) {
	testCases := []struct {
		title    string
		author   string
		expected string
	}{
		{"Dune by Frank Herbert", "Frank Herbert", "Dune"},
		{"Dune by Frank Herbert", "", "Dune"},
		{"Dune", "Frank Herbert", "Dune"},
		{"Goodbye, Columbus", "", "Goodbye, Columbus"},
	}
	for _, test := range testCases {
		require.Equal(t, test.expected, CleanTitle(test.title, test.author))
	}
}
