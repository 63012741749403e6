package catalog

import (
	"strings"
	"testing"
)

func TestValidate_AcceptsWellFormedTree(t *testing.T) {
	cat := &Catalog{
		Name: "sample",
		Nodes: []Node{
			Dir("src",
				Dir("pkg", Files("a.go", "b.go")...),
				File("main.go"),
			),
			File("README.md"),
		},
	}
	if err := cat.Validate(); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
}

func TestValidate_RejectsBadTrees(t *testing.T) {
	tests := []struct {
		name    string
		cat     *Catalog
		wantSub string
	}{
		{
			name:    "empty catalog name",
			cat:     &Catalog{Name: "  ", Nodes: []Node{File("a")}},
			wantSub: "no name",
		},
		{
			name:    "no entries",
			cat:     &Catalog{Name: "empty"},
			wantSub: "no entries",
		},
		{
			name: "duplicate siblings",
			cat: &Catalog{Name: "dup", Nodes: []Node{
				Dir("src", File("a.go"), File("a.go")),
			}},
			wantSub: "src/a.go: duplicate name",
		},
		{
			name: "duplicate dir and file",
			cat: &Catalog{Name: "dup", Nodes: []Node{
				Dir("x"),
				File("x"),
			}},
			wantSub: "duplicate name",
		},
		{
			name: "empty node name",
			cat: &Catalog{Name: "bad", Nodes: []Node{
				Dir("src", File("")),
			}},
			wantSub: "empty name",
		},
		{
			name: "dot name",
			cat: &Catalog{Name: "bad", Nodes: []Node{
				Dir("."),
			}},
			wantSub: `invalid name "."`,
		},
		{
			name: "dotdot name",
			cat: &Catalog{Name: "bad", Nodes: []Node{
				File(".."),
			}},
			wantSub: `invalid name ".."`,
		},
		{
			name: "slash in name",
			cat: &Catalog{Name: "bad", Nodes: []Node{
				File("a/b.txt"),
			}},
			wantSub: "path separator",
		},
		{
			name: "backslash in name",
			cat: &Catalog{Name: "bad", Nodes: []Node{
				Dir(`a\b`),
			}},
			wantSub: "path separator",
		},
		{
			name: "file with children",
			cat: &Catalog{Name: "bad", Nodes: []Node{
				{Name: "x", Kind: KindFile, Children: []Node{File("y")}},
			}},
			wantSub: "cannot have children",
		},
		{
			name: "nested violation reports full path",
			cat: &Catalog{Name: "bad", Nodes: []Node{
				Dir("a", Dir("b", File("c/d"))),
			}},
			wantSub: "a/b/c/d",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cat.Validate()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error = %q, want substring %q", err, tt.wantSub)
			}
		})
	}
}

func TestValidate_SiblingNamesUniquePerLevelOnly(t *testing.T) {
	// The same name reused at different levels is legal.
	cat := &Catalog{
		Name: "repeat",
		Nodes: []Node{
			Dir("widgets",
				Dir("widgets", File("widgets")),
			),
		},
	}
	if err := cat.Validate(); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
}
