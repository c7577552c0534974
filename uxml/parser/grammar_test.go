package parser

import "testing"

func TestGrammar(t *testing.T) {
	g, err := Grammar()
	if err != nil {
		t.Fatalf("Grammar() error = %v", err)
	}

	// Every node kind has a production of the same name.
	for kind, name := range nodeKindNames {
		if _, ok := g[name]; !ok {
			t.Errorf("no production for node kind %v", kind)
		}
	}
}
