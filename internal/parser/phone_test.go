package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchesShape(t *testing.T) {
	assert.True(t, matchesShape([]int{7}, true))
	assert.True(t, matchesShape([]int{3, 4}, true))
	assert.True(t, matchesShape([]int{3, 2, 2}, true))

	assert.True(t, matchesShape([]int{3}, false))
	assert.True(t, matchesShape([]int{3, 2}, false))
	assert.False(t, matchesShape([]int{3, 2}, true))

	assert.False(t, matchesShape([]int{2}, false))
	assert.False(t, matchesShape([]int{3, 5}, false))
	assert.False(t, matchesShape([]int{7, 1}, false))
	assert.False(t, matchesShape([]int{3, 2, 2, 1}, false))
}

func TestSubscriber(t *testing.T) {
	cases := []struct {
		input string
		end   int
		ok    bool
	}{
		{`3456789"`, 7, true},
		{`345-6789"`, 8, true},
		{`345-67-89"`, 9, true},
		{`345-67"`, 0, false},
		{`34-56789"`, 0, false},
		{`3456789-"`, 0, false},
		{`345--6789"`, 0, false},
		{`"`, 0, false},
	}
	for _, tc := range cases {
		p := &parser{input: tc.input}
		end, ok := p.subscriber(0)
		assert.Equal(t, tc.ok, ok, tc.input)
		assert.Equal(t, tc.end, end, tc.input)
	}
}

func TestComplexNumber(t *testing.T) {
	cases := []struct {
		input string
		end   int
		ok    bool
	}{
		{`38(123)3456789"`, 15, true},
		{`1(123)345-67-89"`, 16, true},
		{`380(123)345-6789"`, 17, true},
		{`3801(123)3456789"`, 0, false},
		{`(123)3456789"`, 0, false},
		{`38123)3456789"`, 0, false},
		{`38(12)3456789"`, 0, false},
		{`38(123)3456789`, 0, false},
	}
	for _, tc := range cases {
		p := &parser{input: tc.input}
		end, ok := p.complexNumber(0)
		assert.Equal(t, tc.ok, ok, tc.input)
		assert.Equal(t, tc.end, end, tc.input)
	}
}

func TestSimpleNumber(t *testing.T) {
	cases := []struct {
		input string
		ok    bool
	}{
		{`381233456789"`, true},
		{`38 123 345 6789"`, true},
		{`38 123 345 6789 "`, false},
		{` 381233456789"`, false},
		{`3812"`, false},
		{`38(123)3456789"`, false},
	}
	for _, tc := range cases {
		p := &parser{input: tc.input}
		_, ok := p.simpleNumber(0)
		assert.Equal(t, tc.ok, ok, tc.input)
	}
}
