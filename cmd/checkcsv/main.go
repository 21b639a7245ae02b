// checkcsv valida un csv de preordini sin tocar la tienda: normaliza las
// filas, deriva los precios de anticipo/saldo y muestra la descripción que
// se generaría, para revisar el fichero antes de lanzar el sync real.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/shopspring/decimal"

	"preorder-sync/internal/config"
	"preorder-sync/internal/csvsource"
	"preorder-sync/internal/mappers"
)

var hundred = decimal.NewFromInt(100)

func main() {
	var (
		csvPath  = flag.String("csv", "", "input csv path (falls back to CSV_PATH env, then known locations)")
		showDesc = flag.Bool("desc", false, "print the composed description html per row")
	)
	flag.Parse()

	cfg := config.Load()

	rd, f, err := csvsource.Open(*csvPath, cfg.CSVPath,
		"template_preordini_v7.csv",
		"input/template_preordini_v7.csv",
		"data/template_preordini_v7.csv",
		"csv/template_preordini_v7.csv",
	)
	if err != nil {
		log.Printf("FATAL: %v", err)
		os.Exit(2)
	}
	defer f.Close()

	rule := mappers.PriceRule{DepositPct: cfg.DepositPct, PrepayPct: cfg.PrepayPct}
	log.Printf("checking %s (deposit %s%%, prepay %s%%)",
		f.Name(), cfg.DepositPct.Mul(hundred).String(), cfg.PrepayPct.Mul(hundred).String())

	valid, skipped := 0, 0
	for {
		row, line, err := rd.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("FATAL: csv read: %v", err)
			os.Exit(2)
		}

		item, reason, ok := csvsource.Normalize(row, line)
		if !ok {
			log.Printf("SKIP: line %d: %s", line, reason)
			skipped++
			continue
		}

		deposit, prepay := rule.Derive(item.BasePrice)
		fmt.Printf("line %d | %s | %s | base %s | dep %s | prepay %s\n",
			item.Line, item.SKU, item.Name,
			item.BasePrice.StringFixed(2), deposit.Price.StringFixed(2), prepay.Price.StringFixed(2))
		if *showDesc {
			if d := mappers.ComposeDescription(item.Deadline, item.ETA, item.DescriptionBody); d != "" {
				fmt.Printf("  desc: %s\n", d)
			}
		}
		valid++
	}

	log.Printf("checked: valid=%d skipped=%d", valid, skipped)
}
