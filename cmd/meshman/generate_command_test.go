package main

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"meshman/internal/manifest"
	"meshman/internal/testsupport"
)

func TestGenerateWritesManifestAndSummary(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteAssetTree(t, env.cfg.Paths.AssetsDir, map[string][]string{
		"0": {
			"obj_mesh_placed_agent1_2.glb",
			"obj_mesh_placed_agent1_0.glb",
			"obj_mesh_placed_agent1_1.glb",
			"random.txt",
		},
	})

	out, err := runCLI(t, env.configPath, "generate")
	if err != nil {
		t.Fatalf("generate: %v\n%s", err, out)
	}
	requireContains(t, out, fmt.Sprintf("Generated %s with 1 folders.", env.cfg.Paths.ManifestPath))

	written, err := manifest.ReadFile(env.cfg.Paths.ManifestPath)
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	want := manifest.Manifest{
		"0": {
			"1": {
				"obj_mesh_placed_agent1_0.glb",
				"obj_mesh_placed_agent1_1.glb",
				"obj_mesh_placed_agent1_2.glb",
			},
		},
	}
	if !reflect.DeepEqual(written, want) {
		t.Fatalf("unexpected manifest: %#v", written)
	}
}

func TestGenerateMissingRootSucceeds(t *testing.T) {
	env := setupCLITestEnv(t)

	out, err := runCLI(t, env.configPath, "generate")
	if err != nil {
		t.Fatalf("generate: %v\n%s", err, out)
	}
	requireContains(t, out, "with 0 folders.")

	written, err := manifest.ReadFile(env.cfg.Paths.ManifestPath)
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	if len(written) != 0 {
		t.Fatalf("expected empty manifest, got %#v", written)
	}
}

func TestGenerateJSONOutput(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteAssetTree(t, env.cfg.Paths.AssetsDir, map[string][]string{
		"0": {"obj_mesh_placed_agent1_0.glb"},
	})

	out, err := runCLI(t, env.configPath, "generate", "--json")
	if err != nil {
		t.Fatalf("generate --json: %v\n%s", err, out)
	}

	var parsed manifest.Manifest
	if err := json.Unmarshal([]byte(out), &parsed); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(parsed["0"]["1"]) != 1 {
		t.Fatalf("unexpected manifest: %#v", parsed)
	}
	if strings.Contains(out, "Generated") {
		t.Fatal("summary line should be suppressed in JSON mode")
	}
}

func TestGenerateOutputOverride(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteAssetTree(t, env.cfg.Paths.AssetsDir, map[string][]string{
		"0": {"obj_mesh_placed_agent1_0.glb"},
	})
	altOut := env.cfg.Paths.ManifestPath + ".alt"

	out, err := runCLI(t, env.configPath, "generate", "--output", altOut)
	if err != nil {
		t.Fatalf("generate --output: %v\n%s", err, out)
	}
	requireContains(t, out, altOut)

	if _, err := manifest.ReadFile(altOut); err != nil {
		t.Fatalf("manifest not written to override path: %v", err)
	}
}

func TestGeneratePositionalRoot(t *testing.T) {
	env := setupCLITestEnv(t)
	altRoot := t.TempDir()
	testsupport.WriteAssetTree(t, altRoot, map[string][]string{
		"7": {"obj_mesh_placed_agent2_0.glb"},
	})

	out, err := runCLI(t, env.configPath, "generate", altRoot)
	if err != nil {
		t.Fatalf("generate with root: %v\n%s", err, out)
	}
	requireContains(t, out, "with 1 folders.")
}
