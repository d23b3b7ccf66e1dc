package table_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/mdpara/pkg/table"
)

func TestIsValidDelimiter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		row  string
		want bool
	}{
		{":---|:---|--", true},
		{":---:|:---:|:--:", true},
		{"---|---|--", true},
		{":|:|:", true},
		{"-|-", true},
		{"-|-|", true},
		{":---|:---|", true},
		{":-|", true},
		{"|--|--", true},
		{"|--|:--", true},
		{"|--|:--:|--", true},
		{"-|", true},
		{"|:-:|:-:|:-:|:-:|:-:|", true},
		{":---: |", true},
		{"---| ---", true},
		{"---|   ---", true},
		{"---|---  ", true},
		{"---|---  |", true},
		{"---|---  |  --", true},
		{"--||--", false},
		{"|", false},
		{"-", false},
		{"||--", false},
		{":-:-:|:---:|:--:", false},
		{":---:|:-:-:|:--:", false},
		{":---:|:---:|::-:", false},
		{":---:|:---:|:-::", false},
		{":::|---", false},
		{"-- -|--", false},
	}

	for _, testCase := range tests {
		t.Run(testCase.row, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, testCase.want, table.IsValidDelimiter(testCase.row))
		})
	}
}

func TestParseAlignments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		row  string
		want []table.Alignment
	}{
		{"plain dashes are left", "---|---", []table.Alignment{table.AlignLeft, table.AlignLeft}},
		{"leading colon is left", ":---|---", []table.Alignment{table.AlignLeft, table.AlignLeft}},
		{"two colons are center", ":-:|:---:", []table.Alignment{table.AlignCenter, table.AlignCenter}},
		{"trailing colon is right", "---:|--", []table.Alignment{table.AlignRight, table.AlignLeft}},
		{"outer pipes stripped once", "|:-:|--:|", []table.Alignment{table.AlignCenter, table.AlignRight}},
		{"whitespace trimmed", "  :--  |  --:  ", []table.Alignment{table.AlignLeft, table.AlignRight}},
		{"single column", ":---: |", []table.Alignment{table.AlignCenter}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, testCase.want, table.ParseAlignments(testCase.row))
		})
	}
}

func TestAlignment_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "left", table.AlignLeft.String())
	assert.Equal(t, "center", table.AlignCenter.String())
	assert.Equal(t, "right", table.AlignRight.String())
	assert.Equal(t, "alignment(7)", table.Alignment(7).String())
}
