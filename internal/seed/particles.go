// Package seed 写入标准模型的 17 种基本粒子
package seed

import (
	"context"
	"fmt"

	"particleapi/internal/model"
	"particleapi/internal/service"
)

// 质量单位为 eV
var StandardModel = []model.ParticleInput{
	{PartType: "quark", PartName: "up", Mass: 2200000, Charge: "2/3", Spin: "1/2"},
	{PartType: "quark", PartName: "down", Mass: 4700000, Charge: "-1/3", Spin: "1/2"},
	{PartType: "quark", PartName: "top", Mass: 173100000000, Charge: "2/3", Spin: "1/2"},
	{PartType: "quark", PartName: "bottom", Mass: 4180000000, Charge: "-1/3", Spin: "1/2"},
	{PartType: "quark", PartName: "charm", Mass: 1280000000, Charge: "2/3", Spin: "1/2"},
	{PartType: "quark", PartName: "strange", Mass: 96000000, Charge: "-1/3", Spin: "1/2"},
	{PartType: "lepton", PartName: "electron", Mass: 511000, Charge: "-1", Spin: "1/2"},
	{PartType: "lepton", PartName: "electron neutrino", Mass: 1, Charge: "0", Spin: "1/2"},
	{PartType: "lepton", PartName: "muon", Mass: 105660000, Charge: "-1", Spin: "1/2"},
	{PartType: "lepton", PartName: "muon neutrino", Mass: 170000, Charge: "0", Spin: "1/2"},
	{PartType: "lepton", PartName: "tau", Mass: 1776800000, Charge: "-1", Spin: "1/2"},
	{PartType: "lepton", PartName: "tau neutrino", Mass: 18200000, Charge: "0", Spin: "1/2"},
	{PartType: "gaugeBoson", PartName: "gluon", Mass: 0, Charge: "0", Spin: "1"},
	{PartType: "gaugeBoson", PartName: "photon", Mass: 0, Charge: "0", Spin: "1"},
	{PartType: "gaugeBoson", PartName: "z boson", Mass: 91190000000, Charge: "0", Spin: "1"},
	{PartType: "gaugeBoson", PartName: "w boson", Mass: 80433000000, Charge: "+-1", Spin: "1"},
	{PartType: "scalarBoson", PartName: "higs boson", Mass: 124970000000, Charge: "0", Spin: "0"},
}

// Run 按顺序逐条创建，遇到错误立即停止并返回已创建的记录
func Run(ctx context.Context, svc *service.ParticleService) ([]*model.Particle, error) {
	created := make([]*model.Particle, 0, len(StandardModel))
	for i := range StandardModel {
		p, err := svc.Create(ctx, &StandardModel[i])
		if err != nil {
			return created, fmt.Errorf("seed %s: %w", StandardModel[i].PartName, err)
		}
		created = append(created, p)
	}
	return created, nil
}
