package wifiimport_test

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cdmx-opendata/wifi-points-api/internal/wifiimport"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "points.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const header = "id,programa,fecha_instalacion,latitud,longitud,colonia,alcaldia\n"

func TestOpenCSV_StreamsRowsByColumnName(t *testing.T) {
	path := writeCSV(t, header+
		"W1,c5,2019-05-01,19.43,-99.13,Centro,Cuauhtémoc\n"+
		"W2,c5,NA,19.44,-99.14,,\n")

	src, err := wifiimport.OpenCSV(path)
	if err != nil {
		t.Fatal(err)
	}
	defer src.Close()

	row, err := src.Next()
	if err != nil {
		t.Fatal(err)
	}
	if row["id"] != "W1" || row["colonia"] != "Centro" || row["latitud"] != "19.43" {
		t.Errorf("unexpected first row: %v", row)
	}

	row, err = src.Next()
	if err != nil {
		t.Fatal(err)
	}
	if row["fecha_instalacion"] != "NA" || row["alcaldia"] != "" {
		t.Errorf("unexpected second row: %v", row)
	}

	if _, err := src.Next(); err != io.EOF {
		t.Errorf("expected io.EOF after last row, got %v", err)
	}
}

func TestOpenCSV_StripsHeaderBOM(t *testing.T) {
	path := writeCSV(t, "\ufeff"+header+"W1,c5,NA,19.43,-99.13,NA,NA\n")

	src, err := wifiimport.OpenCSV(path)
	if err != nil {
		t.Fatalf("BOM header should parse, got %v", err)
	}
	defer src.Close()

	row, err := src.Next()
	if err != nil {
		t.Fatal(err)
	}
	if row["id"] != "W1" {
		t.Errorf("expected id column mapped despite BOM, got %v", row)
	}
}

func TestOpenCSV_MissingColumnFails(t *testing.T) {
	path := writeCSV(t, "id,programa,latitud,longitud,colonia,alcaldia\nW1,c5,19.43,-99.13,NA,NA\n")

	_, err := wifiimport.OpenCSV(path)
	if err == nil || !strings.Contains(err.Error(), "fecha_instalacion") {
		t.Errorf("expected missing-column error naming fecha_instalacion, got %v", err)
	}
}

func TestOpenCSV_ShortRowsReadAsEmptyCells(t *testing.T) {
	path := writeCSV(t, header+"W1,c5\n")

	src, err := wifiimport.OpenCSV(path)
	if err != nil {
		t.Fatal(err)
	}
	defer src.Close()

	row, err := src.Next()
	if err != nil {
		t.Fatal(err)
	}
	if row["latitud"] != "" || row["alcaldia"] != "" {
		t.Errorf("expected missing cells to be empty, got %v", row)
	}
}

func TestOpenCSV_MissingFileFails(t *testing.T) {
	if _, err := wifiimport.OpenCSV(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Error("expected error for missing file")
	}
}
