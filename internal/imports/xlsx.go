package imports

import (
	"fmt"
	"io"

	"envanter-backend/internal/models"

	"github.com/xuri/excelize/v2"
)

// readXLSX: İlk sheet'in satırlarını okur; ilk satır başlık kabul edilir.
func readXLSX(r io.Reader) (header []string, rows [][]string, err error) {
	excelFile, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("Excel dosyası okunamadı: %w", err)
	}
	defer excelFile.Close()

	sheetList := excelFile.GetSheetList()
	if len(sheetList) == 0 {
		return nil, nil, fmt.Errorf("Excel dosyasında sheet bulunamadı")
	}

	allRows, err := excelFile.GetRows(sheetList[0])
	if err != nil {
		return nil, nil, fmt.Errorf("Sheet okunamadı: %w", err)
	}
	if len(allRows) == 0 {
		return nil, nil, fmt.Errorf("Excel dosyası boş")
	}

	return allRows[0], allRows[1:], nil
}

func ParseStockXLSX(r io.Reader) ([]models.StockItem, error) {
	header, rows, err := readXLSX(r)
	if err != nil {
		return nil, err
	}
	return stockFromRows(header, rows)
}

func ParseOrdersXLSX(r io.Reader) ([]OrderLine, error) {
	header, rows, err := readXLSX(r)
	if err != nil {
		return nil, err
	}
	return ordersFromRows(header, rows)
}
