package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ycchou/corrnet/internal/dataset"
)

// writeFixture builds a 500-row table: 200 qualifying rows in TissueA,
// 60 in TissueB, 40 in TissueC, and 200 rows below the 0.8 threshold.
func writeFixture(t *testing.T) string {
	t.Helper()
	var b strings.Builder
	b.WriteString("Gene Symbol,Tumor,PCC\n")

	row := func(gene, tissue string, pcc float64) {
		fmt.Fprintf(&b, "%s,%s,%.4f\n", gene, tissue, pcc)
	}
	for i := 0; i < 200; i++ {
		row(fmt.Sprintf("A%03d", i), "TissueA", 0.80+float64(i%20)*0.005)
	}
	for i := 0; i < 60; i++ {
		row(fmt.Sprintf("B%03d", i), "TissueB", 0.82+float64(i%10)*0.01)
	}
	for i := 0; i < 40; i++ {
		row(fmt.Sprintf("C%03d", i), "TissueC", 0.85+float64(i%10)*0.01)
	}
	for i := 0; i < 200; i++ {
		row(fmt.Sprintf("X%03d", i), "TissueA", 0.10+float64(i%60)*0.01)
	}

	path := filepath.Join(t.TempDir(), "normal.csv")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func fixtureOptions(t *testing.T, input string) renderOptions {
	t.Helper()
	return renderOptions{
		input:     input,
		columns:   dataset.DefaultColumns(),
		threshold: 0.8,
		central:   "GCH1",
		maxGenes:  150,
		radius:    400,
		seed:      1,
		output:    filepath.Join(t.TempDir(), "out", "network.html"),
	}
}

func TestRunRenderEndToEnd(t *testing.T) {
	opt := fixtureOptions(t, writeFixture(t))

	report, err := runRender(opt, false)
	if err != nil {
		t.Fatalf("runRender failed: %v", err)
	}

	if report.FilteredRows != 300 {
		t.Errorf("expected 300 filtered rows, got %d", report.FilteredRows)
	}
	if report.Tissues != 3 {
		t.Errorf("expected 3 tissues, got %d", report.Tissues)
	}
	// TissueA capped to 150, TissueB and TissueC kept whole
	if report.GenesAdded != 150+60+40 {
		t.Errorf("expected 250 gene nodes, got %d", report.GenesAdded)
	}
	if report.GenesMerged != 0 {
		t.Errorf("expected no merges, got %d", report.GenesMerged)
	}

	data, err := os.ReadFile(opt.output)
	if err != nil {
		t.Fatalf("output artifact missing: %v", err)
	}
	html := string(data)

	if got := strings.Count(html, `"node_type":"central"`); got != 1 {
		t.Errorf("expected 1 central node in payload, got %d", got)
	}
	if got := strings.Count(html, `"node_type":"tissue"`); got != 3 {
		t.Errorf("expected 3 tissue nodes in payload, got %d", got)
	}
	if got := strings.Count(html, `"node_type":"gene"`); got != 250 {
		t.Errorf("expected 250 gene nodes in payload, got %d", got)
	}
	if !strings.Contains(html, `"id":"GCH1"`) {
		t.Error("central node missing from payload")
	}
	if !strings.Contains(html, "Gene Association Network Centered on GCH1") {
		t.Error("derived title missing")
	}
}

func TestRunRenderCapKeepsTopScores(t *testing.T) {
	opt := fixtureOptions(t, writeFixture(t))

	report := &renderReport{}
	g, err := buildNetwork(opt, false, report)
	if err != nil {
		t.Fatalf("buildNetwork failed: %v", err)
	}

	genes := g.Genes("TissueA")
	if len(genes) != 150 {
		t.Fatalf("expected 150 TissueA genes, got %d", len(genes))
	}
	// The fixture scores cycle 0.80..0.895, 10 rows per value, so the
	// top 150 are exactly the 15 highest values and the cutoff is 0.825.
	min := genes[len(genes)-1].PCC
	if min < 0.8249 || min > 0.8251 {
		t.Errorf("expected cutoff score 0.825, got %f", min)
	}
	prev := genes[0].PCC
	for _, n := range genes {
		if n.PCC > prev {
			t.Errorf("ranked order broken at %s: %f > %f", n.Name, n.PCC, prev)
		}
		prev = n.PCC
	}
}

func TestRunRenderThresholdExcludesLowScores(t *testing.T) {
	opt := fixtureOptions(t, writeFixture(t))

	report := &renderReport{}
	g, err := buildNetwork(opt, false, report)
	if err != nil {
		t.Fatalf("buildNetwork failed: %v", err)
	}

	// X-prefixed genes all score below 0.8 and must not appear
	for _, tissue := range g.Tissues() {
		for _, n := range g.Genes(tissue.Name) {
			if strings.HasPrefix(n.Name, "X") {
				t.Errorf("below-threshold gene %s leaked into graph", n.Name)
			}
			if n.PCC < 0.8 {
				t.Errorf("gene %s scores %f, below threshold", n.Name, n.PCC)
			}
		}
	}
}

func TestRunRenderMissingColumnWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	os.WriteFile(path, []byte("Gene Symbol,PCC\nTP53,0.9\n"), 0o644)

	opt := fixtureOptions(t, path)
	_, err := runRender(opt, false)
	if err == nil {
		t.Fatal("expected error for missing column")
	}

	if _, statErr := os.Stat(opt.output); !os.IsNotExist(statErr) {
		t.Error("no artifact should exist after a load failure")
	}
}

func TestRunRenderMissingInputFile(t *testing.T) {
	opt := fixtureOptions(t, filepath.Join(t.TempDir(), "absent.csv"))

	_, err := runRender(opt, false)
	if err == nil {
		t.Fatal("expected error for missing input file")
	}
}

func TestRunRenderSeededRunsMatch(t *testing.T) {
	input := writeFixture(t)

	opt1 := fixtureOptions(t, input)
	opt2 := fixtureOptions(t, input)

	if _, err := runRender(opt1, false); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	if _, err := runRender(opt2, false); err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	a, _ := os.ReadFile(opt1.output)
	b, _ := os.ReadFile(opt2.output)
	if string(a) != string(b) {
		t.Error("identical input and seed should produce identical artifacts")
	}
}
