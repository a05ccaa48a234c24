// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package io

import (
	"github.com/black-desk/cgroupv2/pkg/codec"
	"github.com/black-desk/cgroupv2/pkg/psi"
)

const (
	FileStat     = "io.stat"
	FileCostQos  = "io.cost.qos"
	FileMax      = "io.max"
	FilePressure = "io.pressure"
)

func (i *IO) Stat() (map[DeviceNumber]Stat, error) {
	return codec.Load[map[DeviceNumber]Stat](i.dir, FileStat, statCodec)
}

func (i *IO) CostQos() (map[DeviceNumber]CostQos, error) {
	return codec.Load[map[DeviceNumber]CostQos](i.dir, FileCostQos, costQosCodec)
}

// SetCostQos writes the parameters of dev at once.
// With CtrlAuto only enable and ctrl are written,
// so the kernel keeps its own parameters.
func (i *IO) SetCostQos(dev DeviceNumber, qos CostQos) error {
	return i.dir.Write(FileCostQos, codec.EncodeLine(DeviceNumber.String, dev, qos))
}

func (i *IO) Max() (map[DeviceNumber]Limit, error) {
	return codec.Load[map[DeviceNumber]Limit](i.dir, FileMax, limitCodec)
}

// SetMax replaces the limits of dev, unbounded fields remove a limit.
func (i *IO) SetMax(dev DeviceNumber, limit Limit) error {
	return i.dir.Write(FileMax, codec.EncodeLine(DeviceNumber.String, dev, limit))
}

func (i *IO) Pressure() (psi.IOPressure, error) {
	return codec.Load[psi.IOPressure](i.dir, FilePressure, psi.IO)
}
