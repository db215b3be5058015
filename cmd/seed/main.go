// seed genera un script SQL con categorías y productos a partir de un CSV exportado del
// sistema anterior (separado por ';', codificado en ISO-8859-1).
//
// Uso: go run ./cmd/seed [productos.csv] [salida.sql]
// Columnas: nombre;categoria;referencia_fabrica;codigo_barras;unidad_medida;descripcion;stock;precio
// Por defecto lee productos.csv y escribe migrations/0002_seed_productos.sql.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

func main() {
	csvPath := "productos.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	outPath := filepath.Join(findModuleRoot(), "migrations", "0002_seed_productos.sql")
	if len(os.Args) > 2 {
		outPath = os.Args[2]
	}

	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	rows, err := readProductos(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := writeSeed(out, filepath.Base(csvPath), rows); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s: %d categorías, %d productos\n", outPath, len(categorias(rows)), len(rows))
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
