package reporting

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/compele/reservas/internal/domain"
	"github.com/compele/reservas/internal/money"
)

const exportSheet = "Solicitações"

var exportHeaders = []string{
	"Código", "Solicitante", "Colaboradores", "Cidade",
	"Check-in", "Check-out", "Solicitada em", "Valor", "Valor com taxa", "Status",
}

// Exporter writes the loaded report rows into a spreadsheet for the local
// export action. The server-side export stays available through ExportURL.
type Exporter struct {
	logger *zap.Logger
}

func NewExporter(logger *zap.Logger) *Exporter {
	return &Exporter{logger: logger}
}

// WriteXLSX writes the given rows to outputPath as a single-sheet workbook.
func (e *Exporter) WriteXLSX(items []domain.Reservation, outputPath string) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		e.logger.Warn("Failed to remove default sheet", zap.Error(err))
	}

	for col, header := range exportHeaders {
		e.setCell(f, cellRef(col, 0), header)
	}

	for row, item := range items {
		values := []string{
			item.CodigoReserva,
			item.UsuarioSolicitanteNome,
			travelerNames(item.Colaboradores),
			item.Cidade,
			item.DataInicio.Format("02/01/2006"),
			item.DataFim.Format("02/01/2006"),
			item.DataCriacao.Format("02/01/2006"),
			money.FormatBRL(item.ValorImovel),
			money.FormatBRL(item.ValorComTaxa),
			item.Status,
		}
		for col, value := range values {
			e.setCell(f, cellRef(col, row+1), value)
		}
	}

	if err := f.SaveAs(outputPath); err != nil {
		return fmt.Errorf("failed to save spreadsheet: %w", err)
	}

	e.logger.Info("Report exported",
		zap.Int("rows", len(items)),
		zap.String("output_path", outputPath))
	return nil
}

func (e *Exporter) setCell(f *excelize.File, cell, value string) {
	if err := f.SetCellValue(exportSheet, cell, value); err != nil {
		e.logger.Warn("Failed to set cell value",
			zap.String("cell", cell),
			zap.Error(err))
	}
}

func cellRef(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col+1, row+1)
	return name
}

func travelerNames(travelers []domain.Traveler) string {
	names := make([]string, 0, len(travelers))
	for _, t := range travelers {
		names = append(names, t.Nome)
	}
	return strings.Join(names, ", ")
}
