/*
 * sigmaac.go, part of dmdpost.
 *
 * Copyright 2026 The dmdpost authors.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package sigmaac evaluates the AC (frequency-dependent) scattering time and the
//Drude dielectric function from the output of phononElectronLinewidth.
package sigmaac

import (
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"

	dmd "github.com/grieder/test-DMD"
	"github.com/grieder/test-DMD/dmdplot"
	"github.com/grieder/test-DMD/eph"
	"github.com/grieder/test-DMD/logscan"
	"github.com/grieder/test-DMD/params"
	"github.com/grieder/test-DMD/table"
	"github.com/spf13/viper"
	"gonum.org/v1/gonum/mat"
)

//Input and output file names.
const (
	ParamsFile    = "sigmaAC.in"
	QListFile     = "Gph.qList"
	LinewidthFile = "Gph.dat"
	LogFile       = "phononElectronLinewidth.out"

	TauFile   = "tauAC.dat"
	ReEpsFile = "ReEpsDrude.dat"
	ImEpsFile = "ImEpsDrude.dat"
)

//GColumn is the column of Gph.dat used as linewidth: the momentum-relaxing one.
//The layout of Gph.dat is not versioned, so this breaks silently if the columns change.
const GColumn = 2

//Options for Run.
type Options struct {
	Viper      *viper.Viper //flags/env already bound; nil means a fresh instance.
	Plot       bool
	PlotFormat string //extension of the figures, default "png"
}

//Result contains the inputs as read and everything computed.
//Frequencies are in eV and times in fs; the rest is in atomic units.
type Result struct {
	Params  *params.AC
	Fermi   *logscan.FermiIntegrals
	NQ      int
	NModes  int
	Pol     *mat.VecDense
	OmegaEV []float64
	TauInv  []float64 //atomic units
	TauFs   []float64
	Eps     []complex128
	Written []string //files written, tables and figures
}

//Inputs are the parsed inputs of the evaluation, in atomic units.
type Inputs struct {
	Params *params.AC
	Modes  *eph.Modes
	Fermi  *logscan.FermiIntegrals
}

//ReadInputs reads the four input files from dir. All of them are required.
func ReadInputs(dir string, v *viper.Viper) (*Inputs, error) {
	errid := "sigmaac.ReadInputs"
	if v == nil {
		v = viper.New()
	}
	p, err := params.Load(v, filepath.Join(dir, ParamsFile))
	if err != nil {
		return nil, dmd.Decorate(err, errid)
	}
	qlist, err := table.LoadFile(filepath.Join(dir, QListFile))
	if err != nil {
		return nil, dmd.Decorate(err, errid)
	}
	gph, err := table.LoadFile(filepath.Join(dir, LinewidthFile))
	if err != nil {
		return nil, dmd.Decorate(err, errid)
	}
	modes, err := eph.NewModes(qlist, gph, GColumn)
	if err != nil {
		return nil, dmd.NewError(filepath.Join(dir, LinewidthFile), "inconsistent with "+QListFile, err, errid)
	}
	var fermi *logscan.FermiIntegrals
	err = dmd.ReadWith(filepath.Join(dir, LogFile), func(r io.Reader) error {
		var err error
		fermi, err = logscan.ParseLinewidth(r)
		return err
	})
	if err != nil {
		return nil, dmd.Decorate(err, errid)
	}
	return &Inputs{Params: p, Modes: modes, Fermi: fermi}, nil
}

//Evaluate computes the scattering rate and the dielectric function. It does
//not touch any file.
func Evaluate(in *Inputs) (*Result, error) {
	p := in.Params
	bose := eph.NewBose(p.T * dmd.Kelvin)
	omega, err := eph.FreqGrid(p.OmegaMax*dmd.EV, p.DOmega*dmd.EV)
	if err != nil {
		return nil, fmt.Errorf("sigmaac.Evaluate: %w", err)
	}
	pol := eph.Polarization(p.PolTheta, p.PolPhi)
	tauInv := eph.ScatteringRate(in.Modes, bose, in.Fermi.GEf, omega)
	eps, err := eph.DrudeEpsilon(pol, in.Fermi.VV, in.Fermi.Omega, omega, tauInv)
	if err != nil {
		return nil, fmt.Errorf("sigmaac.Evaluate: %w", err)
	}
	omegaEV := make([]float64, len(omega))
	for i, v := range omega {
		omegaEV[i] = v / dmd.EV
	}
	nq, nModes := in.Modes.Dims()
	return &Result{
		Params:  p,
		Fermi:   in.Fermi,
		NQ:      nq,
		NModes:  nModes,
		Pol:     pol,
		OmegaEV: omegaEV,
		TauInv:  tauInv,
		TauFs:   eph.Tau(tauInv),
		Eps:     eps,
	}, nil
}

//Run reads the inputs in dir, evaluates, and writes tauAC.dat, ReEpsDrude.dat
//and ImEpsDrude.dat to dir, plus the figures tauAC and epsDrude if requested.
//Existing output files are replaced.
func Run(dir string, opt Options) (*Result, error) {
	errid := "sigmaac.Run"
	in, err := ReadInputs(dir, opt.Viper)
	if err != nil {
		return nil, err
	}
	res, err := Evaluate(in)
	if err != nil {
		return nil, err
	}
	re := make([]float64, len(res.Eps))
	im := make([]float64, len(res.Eps))
	for i, v := range res.Eps {
		re[i] = real(v)
		im[i] = imag(v)
	}
	outputs := []struct {
		name, header string
		col          []float64
	}{
		{TauFile, "omega[eV] tauAC[fs]", res.TauFs},
		{ReEpsFile, "omega[eV] ReEpsDrude", re},
		{ImEpsFile, "omega[eV] ImEpsDrude", im},
	}
	for _, o := range outputs {
		name := filepath.Join(dir, o.name)
		if err := table.WriteFile(name, o.header, res.OmegaEV, o.col); err != nil {
			return nil, dmd.Decorate(err, errid)
		}
		res.Written = append(res.Written, name)
	}
	if !opt.Plot {
		return res, nil
	}
	format := opt.PlotFormat
	if format == "" {
		format = "png"
	}
	figures := []struct {
		name string
		draw func(string) error
	}{
		{"tauAC." + format, func(n string) error { return dmdplot.Tau(res.OmegaEV, res.TauFs, n) }},
		{"epsDrude." + format, func(n string) error { return dmdplot.Epsilon(res.OmegaEV, res.Eps, n) }},
	}
	for _, f := range figures {
		name := filepath.Join(dir, f.name)
		err := f.draw(name)
		if errors.Is(err, dmdplot.ErrEmpty) {
			//e.g. all the linewidths are zero, so tau is infinite everywhere.
			log.Printf("%s: %v, figure not written", errid, err)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", errid, err)
		}
		res.Written = append(res.Written, name)
	}
	return res, nil
}
