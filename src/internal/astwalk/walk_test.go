package astwalk

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/VectorBits/solast/src/internal/astparser"
	"golang.org/x/sync/errgroup"
)

func decodeFixture(t *testing.T) *astparser.SourceUnit {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "astparser", "testdata", "simple_storage.json"))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	su, err := astparser.DecodeSourceUnit(data)
	if err != nil {
		t.Fatalf("DecodeSourceUnit: %v", err)
	}
	return su
}

func TestWalkPreorder(t *testing.T) {
	data := `{"nodeType":"SourceUnit","id":1,"nodes":[
		{"nodeType":"ContractDefinition","id":2,"name":"A","nodes":[{"nodeType":"EventDefinition"}]},
		{"nodeType":"Mystery","id":3,"nodes":[{"nodeType":"ContractDefinition","id":4,"name":"B","nodes":[]}]}
	]}`
	root, err := astparser.Decode([]byte(data))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	var visited []string
	Walk(root, func(n astparser.Node, depth int) bool {
		visited = append(visited, strings.Repeat(">", depth)+astparser.Classify(n).String())
		return true
	})
	want := "SourceUnit >ContractDefinition >>EventDefinition >Unknown >>ContractDefinition"
	if got := strings.Join(visited, " "); got != want {
		t.Fatalf("visit order:\n got %s\nwant %s", got, want)
	}

	var pruned []astparser.NodeType
	Walk(root, func(n astparser.Node, _ int) bool {
		pruned = append(pruned, astparser.Classify(n))
		return astparser.Classify(n) != astparser.NodeUnknown
	})
	if len(pruned) != 4 {
		t.Fatalf("pruned walk visited %v", pruned)
	}

	if got := UnknownTags(root); got["Mystery"] != 1 || len(got) != 1 {
		t.Fatalf("UnknownTags = %v", got)
	}
}

func TestFilterAndCount(t *testing.T) {
	su := decodeFixture(t)

	contracts := Filter(su, astparser.NodeContractDefinition)
	if len(contracts) != 2 || contracts[0].(*astparser.ContractDefinition).Name != "IStorage" {
		t.Fatalf("contracts = %v", contracts)
	}

	counts := CountByType(su)
	want := map[astparser.NodeType]int{
		astparser.NodeSourceUnit:          1,
		astparser.NodePragmaDirective:     1,
		astparser.NodeContractDefinition:  2,
		astparser.NodeFunctionDefinition:  4,
		astparser.NodeVariableDeclaration: 1,
		astparser.NodeEventDefinition:     1,
	}
	for nt, n := range want {
		if counts[nt] != n {
			t.Errorf("count[%s] = %d, want %d", nt, counts[nt], n)
		}
	}
	// 函数体不在子节点列表中
	if counts[astparser.NodeBlock] != 0 || counts[astparser.NodeIdentifier] != 0 {
		t.Errorf("walk descended into bodies: %v", counts)
	}
}

func TestFunctionsAndEntryPoints(t *testing.T) {
	su := decodeFixture(t)

	var names []string
	for _, ref := range Functions(su) {
		names = append(names, ref.String())
	}
	if got := strings.Join(names, ","); got != "IStorage.get,SimpleStorage.set,SimpleStorage._record,SimpleStorage." {
		t.Fatalf("Functions = %s", got)
	}

	var entries []string
	for _, ref := range EntryPoints(su) {
		entries = append(entries, ref.String())
	}
	sort.Strings(entries)
	// get 未实现，_record 为 private
	if got := strings.Join(entries, ","); got != "SimpleStorage.,SimpleStorage.set" {
		t.Fatalf("EntryPoints = %s", got)
	}

	if fn := FindFunction(su, "SimpleStorage", "set"); fn == nil || fn.ID != 21 {
		t.Fatalf("FindFunction(SimpleStorage.set) = %+v", fn)
	}
	if fn := FindFunction(su, "", "_record"); fn == nil || fn.ID != 28 {
		t.Fatalf("FindFunction(_record) = %+v", fn)
	}
	if fn := FindFunction(su, "IStorage", "set"); fn != nil {
		t.Fatalf("FindFunction(IStorage.set) = %+v", fn)
	}
}

func TestFreeFunctionsHaveNoContract(t *testing.T) {
	data := `{"nodeType":"SourceUnit","id":1,"nodes":[
		{"nodeType":"ContractDefinition","id":2,"name":"A","nodes":[]},
		{"nodeType":"FunctionDefinition","id":3,"name":"helper","kind":"freeFunction","visibility":"internal",
		 "stateMutability":"pure","implemented":true,"body":{"nodeType":"Block","id":4,"src":"0:0:0","statements":[]}}
	]}`
	root, err := astparser.Decode([]byte(data))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	refs := Functions(root)
	if len(refs) != 1 || refs[0].ContractName != "" || refs[0].String() != "helper" {
		t.Fatalf("Functions = %+v", refs)
	}
	if len(EntryPoints(root)) != 0 {
		t.Fatalf("free function reported as entry point")
	}
}

func TestConcurrentReadOnlyTraversal(t *testing.T) {
	su := decodeFixture(t)
	want := CountByType(su)

	var g errgroup.Group
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			got := CountByType(su)
			for nt, n := range want {
				if got[nt] != n {
					t.Errorf("count[%s] = %d, want %d", nt, got[nt], n)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("Wait: %v", err)
	}
}

func TestFunctionsOwnerFollowsAncestry(t *testing.T) {
	fn := func(id int, name string) string {
		return fmt.Sprintf(`{"nodeType":"FunctionDefinition","id":%d,"name":%q,"kind":"function","visibility":"public","stateMutability":"view"}`, id, name)
	}
	data := `{"nodeType":"SourceUnit","id":1,"nodes":[
		{"nodeType":"ContractDefinition","id":2,"name":"A","nodes":[` + fn(3, "a") + `]},
		{"nodeType":"Mystery","id":4,"nodes":[` + fn(5, "orphan") + `,
			{"nodeType":"ContractDefinition","id":6,"name":"B","nodes":[` + fn(7, "b") + `]}
		]},
		{"nodeType":"ContractDefinition","id":8,"name":"C","nodes":[
			{"nodeType":"Mystery","id":9,"nodes":[` + fn(10, "c") + `]}
		]}
	]}`
	root, err := astparser.Decode([]byte(data))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	var got []string
	for _, ref := range Functions(root) {
		got = append(got, ref.String())
	}
	if want := "A.a,orphan,B.b,C.c"; strings.Join(got, ",") != want {
		t.Fatalf("Functions = %v, want %s", got, want)
	}
}
