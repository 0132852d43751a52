// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package visualization

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_NumberOK(t *testing.T) {
	tests := []struct {
		name   string
		value  Value
		want   float64
		wantOK bool
	}{
		{"number", Number(12.5), 12.5, true},
		{"numeric string", String(" 42 "), 42, true},
		{"blank string", String("  "), 0, false},
		{"word", String("North"), 0, false},
		{"nan string", String("NaN"), 0, false},
		{"bool", Bool(true), 0, false},
		{"absent", Absent(), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.value.NumberOK()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValue_FloatCoercesToZero(t *testing.T) {
	assert.Equal(t, 0.0, String("n/a").Float())
	assert.Equal(t, 0.0, Absent().Float())
	assert.Equal(t, 3.0, String("3").Float())
}

func TestValue_BoolOK(t *testing.T) {
	b, ok := String("true").BoolOK()
	assert.True(t, ok)
	assert.True(t, b)

	b, ok = String("false").BoolOK()
	assert.True(t, ok)
	assert.False(t, b)

	b, ok = Bool(true).BoolOK()
	assert.True(t, ok)
	assert.True(t, b)

	// only the exact lower-case literals count
	for _, s := range []string{"TRUE", "False", " true", "yes"} {
		_, ok = String(s).BoolOK()
		assert.False(t, ok, s)
	}

	_, ok = Number(1).BoolOK()
	assert.False(t, ok)
}

func TestValue_Text(t *testing.T) {
	assert.Equal(t, "10", Number(10).Text())
	assert.Equal(t, "1.5", Number(1.5).Text())
	assert.Equal(t, "true", Bool(true).Text())
	assert.Equal(t, "", Absent().Text())
	assert.Equal(t, "North", String("North").Text())
}

func TestValue_JSON(t *testing.T) {
	var v Value
	require.NoError(t, json.Unmarshal([]byte(`null`), &v))
	assert.True(t, v.IsAbsent())

	require.NoError(t, json.Unmarshal([]byte(`7`), &v))
	assert.Equal(t, KindNumber, v.Kind())
	assert.Equal(t, 7.0, v.Float())

	require.NoError(t, json.Unmarshal([]byte(`{"a":1}`), &v))
	s, ok := v.StringOK()
	require.True(t, ok)
	assert.Equal(t, `{"a":1}`, s)

	out, err := json.Marshal(Number(math.Inf(1)))
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}

func TestRow_PreservesKeyOrder(t *testing.T) {
	var row Row
	require.NoError(t, json.Unmarshal([]byte(`{"zeta":1,"alpha":"x","mid":null}`), &row))

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, row.Keys())
	assert.True(t, row.Get("mid").IsAbsent())
	assert.True(t, row.Get("missing").IsAbsent())

	out, err := json.Marshal(row)
	require.NoError(t, err)
	assert.Equal(t, `{"zeta":1,"alpha":"x","mid":null}`, string(out))
}

func TestRow_RejectsNonObject(t *testing.T) {
	var row Row
	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &row))
}

func TestDataset_Columns(t *testing.T) {
	ds := Dataset{
		NewRow("region", "North", "total", 10),
		NewRow("total", 12, "region", "South", "extra", true),
	}
	assert.Equal(t, []string{"region", "total"}, ds.Columns())
	assert.Nil(t, Dataset{}.Columns())
}

func TestDatasetFromMaps(t *testing.T) {
	ds := DatasetFromMaps([]string{"b", "a"}, []map[string]interface{}{
		{"a": 1, "b": "x"},
		{"a": nil},
	})
	require.Len(t, ds, 2)
	assert.Equal(t, []string{"b", "a"}, ds[1].Keys())
	assert.True(t, ds[1].Get("b").IsAbsent())
}
