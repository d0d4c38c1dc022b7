package imports

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"envanter-backend/internal/models"
)

// skipBOM: UTF-8 BOM ile kaydedilmiş dosyaları tolere et (Excel "CSV UTF-8" çıktısı).
func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if b, err := br.Peek(3); err == nil && bytes.Equal(b, []byte{0xEF, 0xBB, 0xBF}) {
		_, _ = br.Discard(3)
	}
	return br
}

func readCSV(r io.Reader) (header []string, rows [][]string, err error) {
	reader := csv.NewReader(skipBOM(r))
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err = reader.Read()
	if err == io.EOF {
		return nil, nil, fmt.Errorf("CSV dosyası boş")
	}
	if err != nil {
		return nil, nil, fmt.Errorf("CSV başlığı okunamadı: %w", err)
	}

	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("CSV satırı okunamadı: %w", err)
		}
		rows = append(rows, rec)
	}
	return header, rows, nil
}

func ParseStockCSV(r io.Reader) ([]models.StockItem, error) {
	header, rows, err := readCSV(r)
	if err != nil {
		return nil, err
	}
	return stockFromRows(header, rows)
}

func ParseMenuCSV(r io.Reader) ([]models.MenuLine, error) {
	header, rows, err := readCSV(r)
	if err != nil {
		return nil, err
	}
	return menuFromRows(header, rows)
}

func ParseSalesCSV(r io.Reader) ([]models.SaleRecord, error) {
	header, rows, err := readCSV(r)
	if err != nil {
		return nil, err
	}
	return salesFromRows(header, rows)
}

func ParseOrdersCSV(r io.Reader) ([]OrderLine, error) {
	header, rows, err := readCSV(r)
	if err != nil {
		return nil, err
	}
	return ordersFromRows(header, rows)
}
