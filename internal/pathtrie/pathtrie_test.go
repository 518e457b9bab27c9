package pathtrie_test

import (
	"testing"

	"github.com/reoring/modelstate/internal/pathtrie"
)

func TestTrie_GetOrCreateThenFindReturnsSameNode(t *testing.T) {
	tr := pathtrie.New[string]()
	for _, key := range []string{"", "Person", "Person.Address[0].Street", "Cars[17]"} {
		created := tr.GetOrCreate(key)
		if created == nil {
			t.Fatalf("GetOrCreate(%q) returned nil", key)
		}
		if found := tr.Find(key); found != created {
			t.Errorf("Find(%q) = %p, want the node returned by GetOrCreate (%p)", key, found, created)
		}
	}
}

func TestTrie_GetOrCreateIsIdempotent(t *testing.T) {
	tr := pathtrie.New[string]()
	a := tr.GetOrCreate("Person.Address[0].Street")
	b := tr.GetOrCreate("Person.Address[0].Street")
	if a != b {
		t.Fatalf("repeated GetOrCreate returned distinct nodes")
	}
	// the intermediate levels must not have duplicated either
	person := tr.Find("Person")
	if person == nil {
		t.Fatalf("intermediate node Person missing")
	}
	if got := tr.GetOrCreate("Person"); got != person {
		t.Fatalf("GetOrCreate(Person) created a duplicate intermediate")
	}
}

func TestTrie_ChildMatchingIsCaseInsensitive(t *testing.T) {
	tr := pathtrie.New[string]()
	a := tr.GetOrCreate("Person.Name")
	b := tr.GetOrCreate("person.name")
	if a != b {
		t.Fatalf("case-variant keys resolved to distinct nodes")
	}
	// the node keeps the casing it was created with
	if a.FullKey() != "Person.Name" {
		t.Errorf("FullKey = %q, want original casing %q", a.FullKey(), "Person.Name")
	}
}

func TestTrie_FindDoesNotCreate(t *testing.T) {
	tr := pathtrie.New[string]()
	if n := tr.Find("Person.Name"); n != nil {
		t.Fatalf("Find on empty trie returned %v", n)
	}
	tr.GetOrCreate("Person")
	if n := tr.Find("Person.Name"); n != nil {
		t.Fatalf("Find created or returned a missing child: %v", n)
	}
	// Find may return an invisible node when the path exists
	if n := tr.Find("Person"); n == nil || n.Visible() {
		t.Fatalf("Find(Person) = %v, want existing invisible node", n)
	}
}

func TestTrie_CreatedNodesAreInvisible(t *testing.T) {
	tr := pathtrie.New[string]()
	leaf := tr.GetOrCreate("Person.Address[0].Street")
	for n := leaf; n != nil; n = n.Parent() {
		if n.Visible() {
			t.Fatalf("node %q created visible", n.FullKey())
		}
	}
}

func TestTrie_EmptyKeyIsRoot(t *testing.T) {
	tr := pathtrie.New[string]()
	if tr.GetOrCreate("") != tr.Root() {
		t.Fatalf("GetOrCreate(\"\") is not the root")
	}
	if tr.Find("") != tr.Root() {
		t.Fatalf("Find(\"\") is not the root")
	}
	if tr.Root().SubKey() != "" || tr.Root().FullKey() != "" {
		t.Fatalf("root keys not empty: %q / %q", tr.Root().SubKey(), tr.Root().FullKey())
	}
}

func TestNode_ResetKeepsChildrenAddressable(t *testing.T) {
	tr := pathtrie.New[string]()
	parent := tr.GetOrCreate("Person")
	child := tr.GetOrCreate("Person.Name")
	parent.SetVisible(true)
	child.SetVisible(true)
	parent.Value = "p"

	parent.Reset()

	if parent.Visible() {
		t.Errorf("Reset left the node visible")
	}
	if parent.Value != "" {
		t.Errorf("Reset left payload %q", parent.Value)
	}
	if got := tr.Find("Person.Name"); got != child {
		t.Errorf("child no longer addressable after parent Reset")
	}
	if !child.Visible() {
		t.Errorf("child visibility changed by parent Reset")
	}
}

func TestNode_ParentLinks(t *testing.T) {
	tr := pathtrie.New[int]()
	leaf := tr.GetOrCreate("a.b.c")
	want := []string{"a.b.c", "a.b", "a", ""}
	i := 0
	for n := leaf; n != nil; n = n.Parent() {
		if n.FullKey() != want[i] {
			t.Fatalf("parent chain[%d] = %q, want %q", i, n.FullKey(), want[i])
		}
		i++
	}
	if i != len(want) {
		t.Fatalf("parent chain length %d, want %d", i, len(want))
	}
}
