//go:build integration
// +build integration

package integration

import (
	"testing"

	"github.com/tordrt/dbsynth"
	"github.com/tordrt/dbsynth/internal/namespace"
)

// fieldContent returns the content of collection.field, unwrapping a nullable one_of
func fieldContent(t *testing.T, ns *dbsynth.Namespace, collection, field string) namespace.Content {
	t.Helper()

	ref, err := namespace.NewFieldRef(collection, field)
	if err != nil {
		t.Fatalf("bad field ref: %v", err)
	}
	content, err := ns.GetNode(ref)
	if err != nil {
		t.Fatalf("field %s not found: %v", ref, err)
	}
	if oneOf, ok := content.(*namespace.OneOfContent); ok && oneOf.HasNull() {
		return oneOf.Variants[0]
	}
	return content
}

// verifyCollections checks the collection names and their order
func verifyCollections(t *testing.T, ns *dbsynth.Namespace, expected []string) {
	t.Helper()

	got := ns.CollectionNames()
	if len(got) != len(expected) {
		t.Fatalf("Expected collections %v, got %v", expected, got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Expected collections %v, got %v", expected, got)
			return
		}
	}
}

// verifyId checks that a primary key column became an identifier generator
func verifyId(t *testing.T, ns *dbsynth.Namespace, collection, field string) {
	t.Helper()

	number, ok := fieldContent(t, ns, collection, field).(*namespace.NumberContent)
	if !ok || !number.IsId() {
		t.Errorf("Expected %s.%s to be an id, got %s", collection, field, namespace.TypeName(fieldContent(t, ns, collection, field)))
	}
}

// verifySameAs checks that a foreign key column references target
func verifySameAs(t *testing.T, ns *dbsynth.Namespace, collection, field, target string) {
	t.Helper()

	sameAs, ok := fieldContent(t, ns, collection, field).(*namespace.SameAsContent)
	if !ok {
		t.Errorf("Expected %s.%s to be same_as, got %s", collection, field, namespace.TypeName(fieldContent(t, ns, collection, field)))
		return
	}
	if sameAs.Ref.String() != target {
		t.Errorf("Expected %s.%s to reference %s, got %s", collection, field, target, sameAs.Ref)
	}
}

// verifyCategories checks that an enum column draws from exactly the expected values
func verifyCategories(t *testing.T, ns *dbsynth.Namespace, collection, field string, expected []string) {
	t.Helper()

	str, ok := fieldContent(t, ns, collection, field).(*namespace.StringContent)
	if !ok || str.Kind != namespace.StringCategorical {
		t.Errorf("Expected %s.%s to be categorical", collection, field)
		return
	}
	if len(str.Categories) != len(expected) {
		t.Errorf("Expected categories %v, got %v", expected, str.Categories)
		return
	}
	for i := range expected {
		if str.Categories[i] != expected[i] {
			t.Errorf("Expected categories %v, got %v", expected, str.Categories)
			return
		}
	}
}
