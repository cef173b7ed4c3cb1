package manifest_test

import (
	"path/filepath"
	"reflect"
	"testing"

	"meshman/internal/manifest"
	"meshman/internal/testsupport"
)

func TestBuildGroupsAndSorts(t *testing.T) {
	root := filepath.Join(t.TempDir(), "assets")
	testsupport.WriteAssetTree(t, root, map[string][]string{
		"0": {
			"obj_mesh_placed_agent1_2.glb",
			"obj_mesh_placed_agent1_0.glb",
			"obj_mesh_placed_agent1_1.glb",
			"random.txt",
		},
	})

	built, err := manifest.Build(root)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
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
	if !reflect.DeepEqual(built, want) {
		t.Fatalf("unexpected manifest: %#v", built)
	}
}

func TestBuildMissingRoot(t *testing.T) {
	built, err := manifest.Build(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if built == nil {
		t.Fatal("expected non-nil manifest for missing root")
	}
	if len(built) != 0 {
		t.Fatalf("expected empty manifest, got %#v", built)
	}
}

func TestBuildEmptyFolderKept(t *testing.T) {
	root := filepath.Join(t.TempDir(), "assets")
	testsupport.WriteAssetTree(t, root, map[string][]string{
		"empty":  {},
		"noglbs": {"notes.md", "texture.png"},
	})

	built, err := manifest.Build(root)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	for _, folder := range []string{"empty", "noglbs"} {
		agents, ok := built[folder]
		if !ok {
			t.Fatalf("folder %q missing from manifest", folder)
		}
		if agents == nil || len(agents) != 0 {
			t.Fatalf("folder %q: expected empty agent map, got %#v", folder, agents)
		}
	}
}

func TestBuildMultipleAgents(t *testing.T) {
	root := filepath.Join(t.TempDir(), "assets")
	testsupport.WriteAssetTree(t, root, map[string][]string{
		"scene": {
			"obj_mesh_placed_agent2_10.glb",
			"obj_mesh_placed_agent2_9.glb",
			"obj_mesh_placed_agent10_0.glb",
			"obj_mesh_placed_agent10_3.glb",
		},
	})

	built, err := manifest.Build(root)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	agents := built["scene"]
	if len(agents) != 2 {
		t.Fatalf("expected 2 agents, got %#v", agents)
	}
	if got := agents["2"]; !reflect.DeepEqual(got, []string{
		"obj_mesh_placed_agent2_9.glb",
		"obj_mesh_placed_agent2_10.glb",
	}) {
		t.Fatalf("agent 2: unexpected order %v", got)
	}
	if got := agents["10"]; !reflect.DeepEqual(got, []string{
		"obj_mesh_placed_agent10_0.glb",
		"obj_mesh_placed_agent10_3.glb",
	}) {
		t.Fatalf("agent 10: unexpected order %v", got)
	}
}

func TestBuildIgnoresRootLevelFiles(t *testing.T) {
	root := filepath.Join(t.TempDir(), "assets")
	testsupport.WriteAssetTree(t, root, map[string][]string{
		"0": {"obj_mesh_placed_agent1_0.glb"},
	})
	testsupport.WriteFile(t, filepath.Join(root, "obj_mesh_placed_agent1_1.glb"))

	built, err := manifest.Build(root)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(built) != 1 {
		t.Fatalf("expected a single folder entry, got %#v", built)
	}
}

func TestBuildDeterministic(t *testing.T) {
	root := filepath.Join(t.TempDir(), "assets")
	testsupport.WriteAssetTree(t, root, map[string][]string{
		"0": {"obj_mesh_placed_agent1_1.glb", "obj_mesh_placed_agent1_0.glb"},
		"1": {"obj_mesh_placed_agent4_7.glb"},
	})

	first, err := manifest.Build(root)
	if err != nil {
		t.Fatalf("first Build failed: %v", err)
	}
	second, err := manifest.Build(root)
	if err != nil {
		t.Fatalf("second Build failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical manifests:\n%#v\n%#v", first, second)
	}
}

func TestStats(t *testing.T) {
	m := manifest.Manifest{
		"0": {"1": {"a", "b"}, "2": {"c"}},
		"1": {},
	}
	stats := m.Stats()
	if stats.Folders != 2 || stats.Agents != 2 || stats.Files != 3 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}
