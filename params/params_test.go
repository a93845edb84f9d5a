/*
 * params_test.go, part of dmdpost.
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

package params

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(Te *testing.T) {
	in := `# AC parameters
T 300 K
omegaMax 5
lonely
domega 0.1
domega 0.05`
	m, err := Read(strings.NewReader(in))
	require.NoError(Te, err)
	assert.Equal(Te, map[string]string{"T": "300", "omegaMax": "5", "domega": "0.05"}, m)
}

func writeParams(Te *testing.T, content string) string {
	name := filepath.Join(Te.TempDir(), "sigmaAC.in")
	require.NoError(Te, os.WriteFile(name, []byte(content), 0o644))
	return name
}

func TestLoadDefaults(Te *testing.T) {
	name := writeParams(Te, "# nothing set\n")
	p, err := Load(viper.New(), name)
	require.NoError(Te, err)
	assert.Equal(Te, Defaults(), p)
}

func TestLoad(Te *testing.T) {
	name := writeParams(Te, "T 150\nomegaMax 2.5\ndomega 0.5\npolTheta 90\npolPhi 45\nfoo bar\n")
	p, err := Load(viper.New(), name)
	require.NoError(Te, err)
	assert.Equal(Te, &AC{T: 150, OmegaMax: 2.5, DOmega: 0.5, PolTheta: 90, PolPhi: 45}, p)
}

//Explicit values in viper (flags, Set) win over the file.
func TestLoadOverride(Te *testing.T) {
	name := writeParams(Te, "T 150\ndomega 0.5\n")
	v := viper.New()
	v.Set(KeyT, 77.0)
	p, err := Load(v, name)
	require.NoError(Te, err)
	assert.Equal(Te, 77.0, p.T)
	assert.Equal(Te, 0.5, p.DOmega)
}

func TestLoadEnv(Te *testing.T) {
	Te.Setenv(EnvPrefix+"_T", "420")
	name := writeParams(Te, "T 150\n")
	p, err := Load(viper.New(), name)
	require.NoError(Te, err)
	assert.Equal(Te, 420.0, p.T)
}

func TestLoadErrors(Te *testing.T) {
	_, err := Load(viper.New(), filepath.Join(Te.TempDir(), "sigmaAC.in"))
	assert.Error(Te, err)

	name := writeParams(Te, "T hot\n")
	_, err = Load(viper.New(), name)
	require.Error(Te, err)
	assert.Contains(Te, err.Error(), KeyT)

	name = writeParams(Te, "domega 0\n")
	_, err = Load(viper.New(), name)
	assert.Error(Te, err)
}

func TestValidate(Te *testing.T) {
	assert.NoError(Te, Defaults().Validate())
	p := Defaults()
	p.T = -1
	assert.Error(Te, p.Validate())
	p = Defaults()
	p.OmegaMax = 0
	assert.Error(Te, p.Validate())
}
