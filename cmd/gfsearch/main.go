// Command gfsearch runs the parallel test pipeline (package pipeline)
// across a swept range of degrees over a fixed GF(p), looking for the
// first K accepted polynomials per degree. It emits one JSONL record and
// one CSV row per accept, prints a progress bar, and at the end commits
// the whole accepted batch to a Merkle root (package ledger), optionally
// rendering an HTML chart of accepts and wall-clock per degree. It is an
// example driver, an external collaborator per spec.md §1 — not part of
// the core library.
package main

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"gfsearch/gf"
	gfio "gfsearch/gf/io"
	"gfsearch/ledger"
	"gfsearch/pipeline"
)

const progressBarWidth = 40

type acceptRecord struct {
	Degree      int    `json:"degree"`
	Poly        string `json:"poly"`
	Irreducible bool   `json:"irreducible"`
	Primitive   bool   `json:"primitive"`
	Method      string `json:"irr_method"`
}

type runner struct {
	jsonFile  *os.File
	jsonBuf   *bufio.Writer
	jsonEnc   *json.Encoder
	csvFile   *os.File
	csvWriter *csv.Writer
}

func newRunner(jsonPath, csvPath string) (*runner, error) {
	r := &runner{}
	if jsonPath != "" {
		f, err := os.Create(jsonPath)
		if err != nil {
			return nil, fmt.Errorf("open jsonl output: %w", err)
		}
		buf := bufio.NewWriter(f)
		r.jsonFile = f
		r.jsonBuf = buf
		r.jsonEnc = json.NewEncoder(buf)
	}
	if csvPath != "" {
		f, err := os.Create(csvPath)
		if err != nil {
			return nil, fmt.Errorf("open csv output: %w", err)
		}
		r.csvFile = f
		r.csvWriter = csv.NewWriter(f)
		_ = r.csvWriter.Write([]string{"degree", "poly", "irreducible", "primitive", "irr_method"})
	}
	return r, nil
}

func (r *runner) write(rec acceptRecord) {
	if r.jsonEnc != nil {
		_ = r.jsonEnc.Encode(rec)
	}
	if r.csvWriter != nil {
		_ = r.csvWriter.Write([]string{
			strconv.Itoa(rec.Degree), rec.Poly,
			strconv.FormatBool(rec.Irreducible), strconv.FormatBool(rec.Primitive),
			rec.Method,
		})
	}
}

func (r *runner) Close() {
	if r.jsonBuf != nil {
		_ = r.jsonBuf.Flush()
	}
	if r.jsonFile != nil {
		_ = r.jsonFile.Close()
	}
	if r.csvWriter != nil {
		r.csvWriter.Flush()
	}
	if r.csvFile != nil {
		_ = r.csvFile.Close()
	}
}

// progressBar draws a plain `=`/`-` track of accepts found against the
// total wanted, followed by the accept throughput and elapsed time: how
// fast accepts are arriving matters in a sweep, since `-k` per degree is
// tiny and degrees vary wildly in how long they take to clear.
type progressBar struct {
	total int
	start time.Time
}

func newProgressBar(total int) *progressBar {
	return &progressBar{total: total, start: time.Now()}
}

func (bar *progressBar) Update(done int) {
	if bar.total <= 0 {
		return
	}
	if done > bar.total {
		done = bar.total
	}
	elapsed := time.Since(bar.start)
	rate := float64(done) / elapsed.Seconds()
	pct := 100 * done / bar.total
	marks := pct * progressBarWidth / 100
	track := strings.Repeat("=", marks) + strings.Repeat("-", progressBarWidth-marks)
	fmt.Printf("\r%3d%% <%s> accept %d/%d, %.2f/s, %s elapsed",
		pct, track, done, bar.total, rate, elapsed.Round(time.Millisecond))
	if done == bar.total {
		fmt.Print("\n")
	}
}

func parseDegreeSpec(spec string) ([]int, error) {
	var out []int
	for _, tok := range strings.Split(spec, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if strings.Contains(tok, "..") {
			parts := strings.SplitN(tok, "..", 2)
			lo, err := strconv.Atoi(parts[0])
			if err != nil {
				return nil, fmt.Errorf("bad degree range %q: %w", tok, err)
			}
			hi, err := strconv.Atoi(parts[1])
			if err != nil {
				return nil, fmt.Errorf("bad degree range %q: %w", tok, err)
			}
			for d := lo; d <= hi; d++ {
				out = append(out, d)
			}
			continue
		}
		d, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("bad degree %q: %w", tok, err)
		}
		out = append(out, d)
	}
	return out, nil
}

func parseIrrMethod(s string) (pipeline.IrreducibilityMethod, error) {
	switch s {
	case "none":
		return pipeline.IrrNone, nil
	case "berlekamp":
		return pipeline.IrrBerlekamp, nil
	case "rabin":
		return pipeline.IrrRabin, nil
	case "benor":
		return pipeline.IrrBenOr, nil
	default:
		return 0, fmt.Errorf("unknown -irr method %q", s)
	}
}

func main() {
	p := flag.Uint64("p", 2, "field base (prime)")
	degreesSpec := flag.String("degrees", "3,5,7,9,11", "degree grid: comma list and/or lo..hi ranges")
	k := flag.Int("k", 3, "accepted polynomials to find per degree")
	workers := flag.Int("workers", -1, "worker goroutines (-1 = auto, 0/1 = sequential)")
	irrSpec := flag.String("irr", "berlekamp", "irreducibility test: none|berlekamp|rabin|benor")
	checkPrim := flag.Bool("prim", false, "also require primitivity")
	jsonPath := flag.String("jsonl", "gfsearch.jsonl", "JSONL output path")
	csvPath := flag.String("csv", "gfsearch.csv", "CSV output path")
	chart := flag.Bool("chart", false, "render an HTML accepts/time-per-degree chart")
	chartOut := flag.String("chart-out", "gfsearch_chart.html", "chart output path")
	flag.Parse()

	field, err := gf.NewField(*p)
	if err != nil {
		log.Fatalf("gfsearch: %v", err)
	}
	degrees, err := parseDegreeSpec(*degreesSpec)
	if err != nil {
		log.Fatalf("gfsearch: %v", err)
	}
	irrMethod, err := parseIrrMethod(*irrSpec)
	if err != nil {
		log.Fatalf("gfsearch: %v", err)
	}
	primMethod := pipeline.PrimNone
	if *checkPrim {
		primMethod = pipeline.PrimDefinition
	}

	r, err := newRunner(*jsonPath, *csvPath)
	if err != nil {
		log.Fatalf("gfsearch: %v", err)
	}
	defer r.Close()

	var allAccepted []gf.Poly
	acceptsPerDegree := make(map[int]int, len(degrees))
	timePerDegree := make(map[int]time.Duration, len(degrees))

	bar := newProgressBar(len(degrees) * (*k))
	done := 0

	for _, degree := range degrees {
		degree := degree
		start := time.Now()
		check := pipeline.MakeCheck(irrMethod, primMethod)
		input := func() gf.Poly { return gf.RandomPoly(field, degree) }

		found := 0
		pl := pipeline.New(*workers)
		pl.Run(input, check, func(c gf.Poly, res pipeline.Result) bool {
			ok := res.Irreducible
			if *checkPrim {
				ok = ok && res.Primitive
			}
			if !ok {
				return false
			}
			found++
			done++
			r.write(acceptRecord{
				Degree: degree, Poly: gfio.Format(c),
				Irreducible: res.Irreducible, Primitive: res.Primitive,
				Method: *irrSpec,
			})
			allAccepted = append(allAccepted, c)
			bar.Update(done)
			return found >= *k
		}, true)

		acceptsPerDegree[degree] = found
		timePerDegree[degree] = time.Since(start)
	}

	root := ledger.Build(allAccepted).Root()
	fmt.Printf("accepted %d polynomials across %d degrees; merkle root %x\n", len(allAccepted), len(degrees), root)

	sortedDegrees := append([]int(nil), degrees...)
	sort.Ints(sortedDegrees)
	for _, degree := range sortedDegrees {
		fmt.Printf("  degree=%d: %d accepts in %s\n", degree, acceptsPerDegree[degree], timePerDegree[degree].Round(time.Millisecond))
	}

	if *chart {
		if err := renderChart(*chartOut, degrees, acceptsPerDegree, timePerDegree); err != nil {
			log.Fatalf("gfsearch: chart: %v", err)
		}
		fmt.Printf("chart written to %s\n", *chartOut)
	}
}
