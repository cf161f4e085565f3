package main

import (
	"flag"
	"log"
	"os"

	"github.com/cdmx-opendata/wifi-points-api/internal/db"
	"github.com/cdmx-opendata/wifi-points-api/internal/wifi"
	"github.com/cdmx-opendata/wifi-points-api/internal/wifiimport"
)

func main() {
	var (
		csvPath = flag.String("csv", "", "path to the wifi points CSV export")
		dbURL   = flag.String("db", "", "DATABASE_URL")
		batch   = flag.Int("batch", wifiimport.DefaultBatchSize, "rows per insert transaction")
	)
	flag.Parse()

	if *csvPath == "" || *dbURL == "" {
		flag.Usage()
		os.Exit(2)
	}

	gdb, err := db.Connect(*dbURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := wifi.Init(gdb); err != nil {
		log.Fatal(err)
	}

	res, err := wifiimport.Run(gdb, wifiimport.Config{CSVPath: *csvPath, BatchSize: *batch})
	if err != nil {
		log.Fatal(err)
	}
	if res.Skipped {
		log.Println("import already completed, nothing to do")
		return
	}
	log.Printf("imported %d points (%d rows rejected)", res.Imported, res.Rejected)
}
