package model

import "testing"

func TestParseRef(t *testing.T) {
	cases := []struct {
		in   string
		want Ref
	}{
		{"ProfileScreen", Ref{Module: ModuleLocal, Name: "ProfileScreen"}},
		{"UIKit/UIView", Ref{Module: "UIKit", Name: "UIView"}},
		{"local/BaseView", Ref{Module: ModuleLocal, Name: "BaseView"}},
	}

	for _, tc := range cases {
		if got := ParseRef(tc.in); got != tc.want {
			t.Errorf("ParseRef(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestRefString(t *testing.T) {
	if got := (Ref{Module: ModuleLocal, Name: "BaseView"}).String(); got != "BaseView" {
		t.Errorf("local ref renders %q, want bare name", got)
	}

	if got := (Ref{Module: "UIKit", Name: "UIView"}).String(); got != "UIKit/UIView" {
		t.Errorf("foreign ref renders %q, want module-qualified", got)
	}
}

func TestTruthString(t *testing.T) {
	cases := map[Truth]string{True: "true", False: "false", Unknown: "unknown"}
	for truth, want := range cases {
		if truth.String() != want {
			t.Errorf("Truth(%d).String() = %q, want %q", truth, truth.String(), want)
		}
	}
}

func TestResolutionTarget(t *testing.T) {
	sym := &Symbol{Name: "ProfileScreen", Module: ModuleLocal, Kind: KindClass}

	resolved := Resolution{State: Resolved, Candidates: []*Symbol{sym}}
	if resolved.Target() != sym {
		t.Errorf("resolved Target = %v, want the single candidate", resolved.Target())
	}

	ambiguous := Resolution{State: Ambiguous, Candidates: []*Symbol{sym, sym}}
	if ambiguous.Target() != nil {
		t.Errorf("ambiguous Target = %v, want nil", ambiguous.Target())
	}

	if (Resolution{State: Unresolvable}).Target() != nil {
		t.Error("unresolvable Target should be nil")
	}
}

func TestResolvedTypeRefHelpers(t *testing.T) {
	base := &Symbol{Name: "BaseView", Module: ModuleLocal, Kind: KindClass}
	opaque := &Symbol{Name: "UIView", Module: "UIKit", Kind: KindOpaque}
	proto := &Symbol{Name: "Trackable", Module: ModuleLocal, Kind: KindProtocol}

	rt := &ResolvedType{
		SuperclassChain:    []*Symbol{base, opaque},
		Protocols:          []*Symbol{proto},
		TerminatedAtOpaque: true,
	}

	chain := rt.ChainRefs()
	if len(chain) != 2 || chain[0].Name != "BaseView" || chain[1].Module != "UIKit" {
		t.Errorf("ChainRefs = %v", chain)
	}

	protocols := rt.ProtocolRefs()
	if len(protocols) != 1 || protocols[0].Name != "Trackable" {
		t.Errorf("ProtocolRefs = %v", protocols)
	}
}
