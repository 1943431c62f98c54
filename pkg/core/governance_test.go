//go:build governance

package core_test

import (
	"go/types"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

const modulePath = "github.com/leapstack-labs/leapprep"

// =============================================================================
// COHESION TEST - Core types must be shared by multiple packages
// =============================================================================

// TestGovernance_CoreCohesion verifies that types in pkg/core are genuinely
// shared across multiple packages. Single-use types should be moved to their
// sole consumer.
func TestGovernance_CoreCohesion(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedImports | packages.NeedTypes |
			packages.NeedTypesInfo | packages.NeedDeps,
	}
	pkgs, err := packages.Load(cfg, modulePath+"/...")
	if err != nil {
		t.Fatalf("Failed to load packages: %v", err)
	}

	coreDefs := make(map[types.Object]string)
	var corePkg *packages.Package

	for _, p := range pkgs {
		if p.PkgPath != modulePath+"/pkg/core" {
			continue
		}
		corePkg = p
		scope := p.Types.Scope()
		for _, name := range scope.Names() {
			obj := scope.Lookup(name)
			if _, isType := obj.(*types.TypeName); isType && obj.Exported() {
				coreDefs[obj] = name
			}
		}
		break
	}

	if corePkg == nil {
		t.Fatal("Could not find pkg/core")
	}

	// CoreTypeName -> set of importing packages
	usageMap := make(map[string]map[string]bool)
	for _, name := range coreDefs {
		usageMap[name] = make(map[string]bool)
	}

	base := modulePath + "/"
	for _, p := range pkgs {
		if p.PkgPath == corePkg.PkgPath || strings.HasSuffix(p.PkgPath, "_test") || p.TypesInfo == nil {
			continue
		}
		for _, obj := range p.TypesInfo.Uses {
			if name, exists := coreDefs[obj]; exists {
				usageMap[name][strings.TrimPrefix(p.PkgPath, base)] = true
			}
		}
	}

	for typeName, importers := range usageMap {
		if isCohesionAllowlisted(typeName) {
			continue
		}

		switch len(importers) {
		case 0:
			t.Logf("WARNING: Unused Core Type: %s (consider deleting)", typeName)
		case 1:
			var user string
			for k := range importers {
				user = k
			}
			t.Errorf("COHESION VIOLATION: 'core.%s' is used ONLY by '%s'.\n"+
				"   Fix: Move type from pkg/core to %s.",
				typeName, user, user)
		}
	}
}

// isCohesionAllowlisted returns true for types allowed to have single usage.
func isCohesionAllowlisted(name string) bool {
	allowlist := map[string]bool{
		"Kind": true, // reached through Value.Kind(), rarely named
	}
	return allowlist[name]
}

// =============================================================================
// PURITY TEST - No type alias re-exports of core types
// =============================================================================

// TestGovernance_NoTypeAliasReexports ensures no package re-exports the
// value model under its own name; consumers use core.Value directly.
func TestGovernance_NoTypeAliasReexports(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedImports | packages.NeedTypes,
	}
	pkgs, err := packages.Load(cfg, modulePath+"/...")
	if err != nil {
		t.Fatalf("Failed to load packages: %v", err)
	}

	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 || pkg.PkgPath == modulePath+"/pkg/core" {
			continue
		}

		scope := pkg.Types.Scope()
		for _, name := range scope.Names() {
			typeName, ok := scope.Lookup(name).(*types.TypeName)
			if !ok || !typeName.Exported() || !typeName.IsAlias() {
				continue
			}

			named, ok := types.Unalias(typeName.Type()).(*types.Named)
			if !ok || named.Obj().Pkg() == nil {
				continue
			}
			if named.Obj().Pkg().Path() == modulePath+"/pkg/core" {
				t.Errorf("PURITY VIOLATION: Package '%s' re-exports core.%s as alias '%s'.\n"+
					"   Fix: Remove the alias. Consumers should use core.%s directly.",
					strings.TrimPrefix(pkg.PkgPath, modulePath+"/"), named.Obj().Name(), name, named.Obj().Name())
			}
		}
	}
}

// =============================================================================
// LAYERING TEST - Libraries never reach into the CLI
// =============================================================================

// TestGovernance_LibrariesDoNotImportCLI ensures pkg/... and the registry
// layer stay usable without the command-line packages.
func TestGovernance_LibrariesDoNotImportCLI(t *testing.T) {
	cfg := &packages.Config{Mode: packages.NeedName | packages.NeedImports | packages.NeedDeps}
	pkgs, err := packages.Load(cfg, modulePath+"/pkg/...", modulePath+"/internal/registry", modulePath+"/internal/ops", modulePath+"/internal/codec")
	if err != nil {
		t.Fatalf("Failed to load packages: %v", err)
	}

	forbidden := modulePath + "/internal/cli"
	packages.Visit(pkgs, nil, func(p *packages.Package) {
		for path := range p.Imports {
			if strings.HasPrefix(path, forbidden) {
				t.Errorf("LAYERING VIOLATION: '%s' imports '%s'",
					strings.TrimPrefix(p.PkgPath, modulePath+"/"), strings.TrimPrefix(path, modulePath+"/"))
			}
		}
	})
}
