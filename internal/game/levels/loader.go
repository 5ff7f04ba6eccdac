// Package levels loads level definitions for the pipewalker campaign.
// This package depends on the game core but the core does not depend
// on it; the core only ever sees finished LevelDef values.
package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/pipewalker/internal/game/core"
)

// yamlCampaign is the on-disk shape of a campaign file.
type yamlCampaign struct {
	Levels []yamlLevel `yaml:"levels"`
}

type yamlLevel struct {
	Name     string     `yaml:"name"`
	Rooms    []yamlRoom `yaml:"rooms"`
	Entrance yamlPortal `yaml:"entrance"`
	Exit     yamlPortal `yaml:"exit"`
	Pipes    []yamlPipe `yaml:"pipes,omitempty"`
	Coins    []yamlCell `yaml:"coins,omitempty"`
	Items    []yamlCell `yaml:"items,omitempty"`
	Boss     *yamlBoss  `yaml:"boss,omitempty"`
}

type yamlCell struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

type yamlRoom struct {
	Min yamlCell `yaml:"min"`
	Max yamlCell `yaml:"max"`
}

type yamlPortal struct {
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Facing string `yaml:"facing"`
}

type yamlPipe struct {
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Color  string `yaml:"color"`
	Facing string `yaml:"facing"`
}

type yamlBoss struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Health int `yaml:"health"`
}

// ParseYAML parses one campaign file into ordered level definitions.
// Malformed facings, colors and out-of-range coordinates are reported,
// not skipped: a broken level file must never load half-way.
func ParseYAML(data []byte) ([]core.LevelDef, error) {
	var yc yamlCampaign
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}

	defs := make([]core.LevelDef, 0, len(yc.Levels))
	for i, yl := range yc.Levels {
		def, err := yl.toDef()
		if err != nil {
			return nil, fmt.Errorf("level %d (%s): %w", i, yl.Name, err)
		}
		defs = append(defs, def)
	}
	return defs, nil
}

func (yl yamlLevel) toDef() (core.LevelDef, error) {
	def := core.LevelDef{Name: yl.Name}

	for _, r := range yl.Rooms {
		room := core.Room{Min: core.C(r.Min.X, r.Min.Y), Max: core.C(r.Max.X, r.Max.Y)}
		if !core.InBounds(room.Min) || !core.InBounds(room.Max) {
			return def, fmt.Errorf("room %s-%s out of range", room.Min, room.Max)
		}
		def.Rooms = append(def.Rooms, room)
	}

	entrance, err := parsePortal(yl.Entrance, "entrance")
	if err != nil {
		return def, err
	}
	exit, err := parsePortal(yl.Exit, "exit")
	if err != nil {
		return def, err
	}
	def.Entrance = entrance
	def.Exit = exit

	for _, p := range yl.Pipes {
		pos := core.C(p.X, p.Y)
		if !core.InBounds(pos) {
			return def, fmt.Errorf("pipe at %s out of range", pos)
		}
		color, ok := core.ParsePipeColor(p.Color)
		if !ok {
			return def, fmt.Errorf("pipe at %s: unknown color %q", pos, p.Color)
		}
		facing, ok := core.ParseOrientation(p.Facing)
		if !ok {
			return def, fmt.Errorf("pipe at %s: unknown facing %q", pos, p.Facing)
		}
		if end := core.NewPipeTile(pos, color, facing).PipeEnd(); !core.InBounds(end) {
			return def, fmt.Errorf("pipe at %s exits the grid at %s", pos, end)
		}
		def.Pipes = append(def.Pipes, core.PipeDef{Pos: pos, Color: color, Facing: facing})
	}

	for _, c := range yl.Coins {
		pos := core.C(c.X, c.Y)
		if !core.InBounds(pos) {
			return def, fmt.Errorf("coin at %s out of range", pos)
		}
		def.Coins = append(def.Coins, pos)
	}
	for _, c := range yl.Items {
		pos := core.C(c.X, c.Y)
		if !core.InBounds(pos) {
			return def, fmt.Errorf("item at %s out of range", pos)
		}
		def.Items = append(def.Items, pos)
	}

	if yl.Boss != nil {
		pos := core.C(yl.Boss.X, yl.Boss.Y)
		if !core.InBounds(pos) {
			return def, fmt.Errorf("boss at %s out of range", pos)
		}
		if yl.Boss.Health < 0 {
			return def, fmt.Errorf("boss health %d is negative", yl.Boss.Health)
		}
		def.Boss = &core.BossDef{Pos: pos, Health: yl.Boss.Health}
	}

	return def, nil
}

func parsePortal(yp yamlPortal, what string) (core.PortalDef, error) {
	pos := core.C(yp.X, yp.Y)
	if !core.InBounds(pos) {
		return core.PortalDef{}, fmt.Errorf("%s at %s out of range", what, pos)
	}
	facing, ok := core.ParseOrientation(yp.Facing)
	if !ok {
		return core.PortalDef{}, fmt.Errorf("%s at %s: unknown facing %q", what, pos, yp.Facing)
	}
	return core.PortalDef{Pos: pos, Facing: facing}, nil
}

// Load reads level definitions from a campaign file, or from every
// .yaml/.yml file in a directory. Directory files are visited in sorted
// order so the level sequence is deterministic.
func Load(path string) ([]core.LevelDef, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("levels: stat %s: %w", path, err)
	}

	if !info.IsDir() {
		return loadFile(path)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("levels: read dir %s: %w", path, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext == ".yaml" || ext == ".yml" {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("levels: no level files in %s", path)
	}
	sort.Strings(names)

	var defs []core.LevelDef
	for _, name := range names {
		fileDefs, err := loadFile(filepath.Join(path, name))
		if err != nil {
			return nil, err
		}
		defs = append(defs, fileDefs...)
	}
	return defs, nil
}

func loadFile(path string) ([]core.LevelDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", path, err)
	}
	defs, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("levels: parse %s: %w", path, err)
	}
	return defs, nil
}
