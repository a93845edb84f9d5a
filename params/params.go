/*
 * params.go, part of dmdpost.
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

//Package params reads the key-value input files of the analysis (such as
//sigmaAC.in) and merges them with command-line flags and environment variables
//through viper.
package params

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"sort"
	"strings"

	dmd "github.com/grieder/test-DMD"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

//EnvPrefix is the prefix of environment variables that override parameters,
//e.g. DMDPOST_T=300.
const EnvPrefix = "DMDPOST"

//Read reads "key value" pairs from r, one per line. Lines starting with # and lines
//with less than 2 tokens are skipped, and tokens after the second are ignored.
//If a key is repeated, the last value is kept.
func Read(r io.Reader) (map[string]string, error) {
	inp := bufio.NewReader(r)
	ret := make(map[string]string)
	var line string
	var err error
	for line, err = inp.ReadString('\n'); ; line, err = inp.ReadString('\n') {
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("params.Read: %w", err)
		}
		if line == "" && err != nil {
			break
		}
		if !strings.HasPrefix(line, "#") {
			if tokens := strings.Fields(line); len(tokens) >= 2 {
				ret[tokens[0]] = tokens[1]
			}
		}
		if err != nil {
			break
		}
	}
	return ret, nil
}

//AC are the parameters of the AC scattering rate / dielectric function evaluation.
//The values are in the units of the input file, not in atomic units.
type AC struct {
	T        float64 //temperature in K
	OmegaMax float64 //maximum frequency in eV (excluded)
	DOmega   float64 //frequency step in eV
	PolTheta float64 //polarization polar angle in degrees
	PolPhi   float64 //polarization azimuth in degrees
}

//Keys of the AC parameters, as written in sigmaAC.in.
const (
	KeyT        = "T"
	KeyOmegaMax = "omegaMax"
	KeyDOmega   = "domega"
	KeyPolTheta = "polTheta"
	KeyPolPhi   = "polPhi"
)

//Defaults returns the default AC parameters.
func Defaults() *AC {
	return &AC{T: 298, OmegaMax: 10, DOmega: 0.01, PolTheta: 0, PolPhi: 0}
}

func (P *AC) fields() map[string]*float64 {
	return map[string]*float64{
		KeyT:        &P.T,
		KeyOmegaMax: &P.OmegaMax,
		KeyDOmega:   &P.DOmega,
		KeyPolTheta: &P.PolTheta,
		KeyPolPhi:   &P.PolPhi,
	}
}

//SetDefaults puts the AC defaults in v, and sets v to read environment variables
//with EnvPrefix.
func SetDefaults(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	for k, p := range Defaults().fields() {
		v.SetDefault(k, *p)
	}
}

//Load reads the parameter file name (which can be compressed, see dmd.Open) into v,
//with less priority than flags and environment variables already bound to v,
//and returns the resulting AC parameters. Unknown keys are reported and ignored.
func Load(v *viper.Viper, name string) (*AC, error) {
	var m map[string]string
	err := dmd.ReadWith(name, func(r io.Reader) error {
		var err error
		m, err = Read(r)
		return err
	})
	if err != nil {
		return nil, dmd.Decorate(err, "params.Load")
	}
	SetDefaults(v)
	known := Defaults().fields()
	cfg := make(map[string]any, len(m))
	unknown := make([]string, 0)
	for k, val := range m {
		if _, ok := known[k]; !ok {
			unknown = append(unknown, k)
			continue
		}
		cfg[k] = val
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		log.Printf("params.Load: ignoring unknown keys in %s: %s", name, strings.Join(unknown, ", "))
	}
	if err := v.MergeConfigMap(cfg); err != nil {
		return nil, fmt.Errorf("params.Load: %w", err)
	}
	return FromViper(v)
}

//FromViper converts the AC parameters currently in v. Values that are not
//numbers are an error.
func FromViper(v *viper.Viper) (*AC, error) {
	ret := Defaults()
	for k, p := range ret.fields() {
		f, err := cast.ToFloat64E(v.Get(k))
		if err != nil {
			return nil, fmt.Errorf("params: invalid value for %s: %w", k, err)
		}
		*p = f
	}
	if err := ret.Validate(); err != nil {
		return nil, err
	}
	return ret, nil
}

//Validate checks that the parameters can produce a frequency grid.
func (P *AC) Validate() error {
	if P.T <= 0 {
		return fmt.Errorf("params: temperature must be positive, got %g K", P.T)
	}
	if P.DOmega <= 0 {
		return fmt.Errorf("params: %s must be positive, got %g eV", KeyDOmega, P.DOmega)
	}
	if P.OmegaMax <= 0 {
		return fmt.Errorf("params: %s must be positive, got %g eV", KeyOmegaMax, P.OmegaMax)
	}
	return nil
}
