// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package psi decodes pressure stall information blocks,
// as found in cpu.pressure, memory.pressure and io.pressure:
//
//	some avg10=0.00 avg60=0.00 avg300=0.00 total=0
//	full avg10=0.00 avg60=0.00 avg300=0.00 total=0
package psi

import (
	"errors"

	"github.com/black-desk/cgroupv2/pkg/codec"
)

const (
	KeySome = "some"
	KeyFull = "full"
)

var ErrMetricMissing = errors.New("pressure metric is missing.")

// PSIMetric is one line of a pressure file.
// Averages are percentages, Total is in microseconds.
type PSIMetric struct {
	Key    string  `yaml:"-"`
	Avg10  float32 `yaml:"avg10"`
	Avg60  float32 `yaml:"avg60"`
	Avg300 float32 `yaml:"avg300"`
	Total  uint64  `yaml:"total"`
}

func (m *PSIMetric) Set(key, value string) (err error) {
	err = codec.Assign(map[string]*float32{
		"avg10":  &m.Avg10,
		"avg60":  &m.Avg60,
		"avg300": &m.Avg300,
	}, codec.ParseFloat32, key, value)
	if err != nil {
		return
	}

	err = codec.Assign(map[string]*uint64{
		"total": &m.Total,
	}, codec.ParseUint64, key, value)
	return
}

type CPUPressure struct {
	Some PSIMetric `yaml:"some"`
	// Full is only reported by kernels since 5.13.
	Full *PSIMetric `yaml:"full,omitempty"`
}

type MemoryPressure struct {
	Some PSIMetric `yaml:"some"`
	Full PSIMetric `yaml:"full"`
}

type IOPressure struct {
	Some PSIMetric `yaml:"some"`
	Full PSIMetric `yaml:"full"`
}

var metrics = codec.NestedKeyed[string, PSIMetric, *PSIMetric]{
	Key: codec.ParseString,
}

func decode(content []byte) (ret map[string]PSIMetric, err error) {
	if len(content) == 0 {
		err = codec.ErrEmptyFile
		return
	}

	var m map[string]PSIMetric
	m, err = metrics.Decode(content)
	if err != nil {
		return
	}

	for key := range m {
		metric := m[key]
		metric.Key = key
		m[key] = metric
	}

	ret = m
	return
}

func lookup(m map[string]PSIMetric, key string, content []byte) (ret PSIMetric, err error) {
	metric, ok := m[key]
	if !ok {
		err = codec.Malformed(key, string(content), ErrMetricMissing)
		return
	}

	ret = metric
	return
}

func DecodeCPU(content []byte) (ret CPUPressure, err error) {
	var m map[string]PSIMetric
	m, err = decode(content)
	if err != nil {
		return
	}

	var v CPUPressure
	v.Some, err = lookup(m, KeySome, content)
	if err != nil {
		return
	}

	if full, ok := m[KeyFull]; ok {
		v.Full = &full
	}

	ret = v
	return
}

func DecodeMemory(content []byte) (ret MemoryPressure, err error) {
	var m map[string]PSIMetric
	m, err = decode(content)
	if err != nil {
		return
	}

	var v MemoryPressure
	v.Some, err = lookup(m, KeySome, content)
	if err != nil {
		return
	}

	v.Full, err = lookup(m, KeyFull, content)
	if err != nil {
		return
	}

	ret = v
	return
}

func DecodeIO(content []byte) (ret IOPressure, err error) {
	var m MemoryPressure
	m, err = DecodeMemory(content)
	if err != nil {
		return
	}

	ret = IOPressure{Some: m.Some, Full: m.Full}
	return
}

var (
	CPU    = codec.DecoderFunc[CPUPressure](DecodeCPU)
	Memory = codec.DecoderFunc[MemoryPressure](DecodeMemory)
	IO     = codec.DecoderFunc[IOPressure](DecodeIO)
)
