package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/eunsung-lim/cluster-algebra/lamination"
	"github.com/eunsung-lim/cluster-algebra/quiver"
)

// quiverctl definition file: vertices, arrows, and optionally the polygon
// embedding plus laminations for shear rows. TOML or YAML, picked by file
// extension.
type fileConfig struct {
	Vertices    []vertexConfig     `toml:"vertices" yaml:"vertices"`
	Edges       []edgeConfig       `toml:"edges" yaml:"edges"`
	Embedding   *embeddingConfig   `toml:"embedding" yaml:"embedding"`
	Laminations []laminationConfig `toml:"laminations" yaml:"laminations"`
}

type vertexConfig struct {
	Name string `toml:"name" yaml:"name"`
	Kind string `toml:"kind" yaml:"kind"`
}

type edgeConfig struct {
	From   string `toml:"from" yaml:"from"`
	To     string `toml:"to" yaml:"to"`
	Weight int64  `toml:"weight" yaml:"weight"`
}

type embeddingConfig struct {
	Corners int              `toml:"corners" yaml:"corners"`
	Arcs    map[string][]int `toml:"arcs" yaml:"arcs"`
}

type laminationConfig struct {
	From string `toml:"from" yaml:"from"`
	To   string `toml:"to" yaml:"to"`
}

// loadFileConfig parses a definition file, dispatching on the extension.
func loadFileConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return fileConfig{}, fmt.Errorf("load quiver config: %w", err)
		}
	case ".yaml", ".yml":
		raw, err := os.ReadFile(path)
		if err != nil {
			return fileConfig{}, fmt.Errorf("load quiver config: %w", err)
		}
		if err = yaml.Unmarshal(raw, &cfg); err != nil {
			return fileConfig{}, fmt.Errorf("load quiver config: %w", err)
		}
	default:
		return fileConfig{}, fmt.Errorf(
			"load quiver config: unsupported extension %q (expected .toml, .yaml, or .yml)",
			filepath.Ext(path),
		)
	}
	if len(cfg.Vertices) == 0 {
		return fileConfig{}, fmt.Errorf("load quiver config: %q defines no vertices", path)
	}

	return cfg, nil
}

// buildQuiver assembles the quiver from the parsed definition. An omitted
// edge weight means 1.
func buildQuiver(cfg fileConfig) (*quiver.Quiver, error) {
	q := quiver.New()
	for _, v := range cfg.Vertices {
		kind, err := parseKind(v.Kind)
		if err != nil {
			return nil, fmt.Errorf("vertex %q: %w", v.Name, err)
		}
		if _, err = q.AddVertex(strings.TrimSpace(v.Name), kind); err != nil {
			return nil, fmt.Errorf("vertex %q: %w", v.Name, err)
		}
	}
	for _, e := range cfg.Edges {
		w := e.Weight
		if w == 0 {
			w = 1
		}
		if err := q.AddEdge(strings.TrimSpace(e.From), strings.TrimSpace(e.To), w); err != nil {
			return nil, fmt.Errorf("edge %s → %s: %w", e.From, e.To, err)
		}
	}

	return q, nil
}

// parseKind maps the config string onto a vertex kind.
func parseKind(s string) (quiver.VertexKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cluster":
		return quiver.Cluster, nil
	case "frozen":
		return quiver.Frozen, nil
	default:
		return 0, fmt.Errorf("unknown vertex kind %q (expected cluster or frozen)", s)
	}
}

// buildEmbedding converts the embedding section; shear rows need it.
func buildEmbedding(cfg *embeddingConfig) (lamination.Embedding, error) {
	emb := lamination.Embedding{
		Corners: cfg.Corners,
		Arcs:    make(map[string]lamination.Arc, len(cfg.Arcs)),
	}
	for name, pair := range cfg.Arcs {
		if len(pair) != 2 {
			return lamination.Embedding{}, fmt.Errorf(
				"embedding arc %q: want [a, b], got %d corners", name, len(pair))
		}
		emb.Arcs[name] = lamination.Arc{A: pair[0], B: pair[1]}
	}

	return emb, nil
}

// shearRows computes one shear vector per configured lamination.
func shearRows(q *quiver.Quiver, emb lamination.Embedding, lams []laminationConfig) ([]lamination.ShearVector, error) {
	rows := make([]lamination.ShearVector, 0, len(lams))
	for _, lc := range lams {
		vec, err := lamination.Shear(q, emb, lamination.Lamination{
			From: strings.TrimSpace(lc.From),
			To:   strings.TrimSpace(lc.To),
		})
		if err != nil {
			return nil, fmt.Errorf("lamination %s → %s: %w", lc.From, lc.To, err)
		}
		rows = append(rows, vec)
	}

	return rows, nil
}
