// Package xmlexport genera el libro diario en XML para intercambio con
// sistemas contables externos y archivo fiscal.
package xmlexport

import (
	"fmt"
	"time"

	"github.com/beevik/etree"

	appreportes "github.com/jvargas/Finanzas-api/internal/application/reportes"
	"github.com/jvargas/Finanzas-api/internal/domain/entity"
)

const formatVersion = "1.0"

// LibroDiarioExporter implementa reportes.JournalBookExporter usando etree.
type LibroDiarioExporter struct {
	companyName string
	currency    string
}

// NewLibroDiarioExporter construye el exportador. companyName y currency
// aparecen en la cabecera del libro.
func NewLibroDiarioExporter(companyName, currency string) *LibroDiarioExporter {
	return &LibroDiarioExporter{companyName: companyName, currency: currency}
}

// BuildJournalBook serializa los asientos del rango [from, to] como:
//
//	<LibroDiario version="1.0" moneda="BOB">
//	  <Empresa>...</Empresa>
//	  <Periodo desde="2026-01-01" hasta="2026-01-31"/>
//	  <Asiento numero="1" fecha="2026-01-05">
//	    <Concepto>...</Concepto>
//	    <Linea cuenta="1.1.01" debe="100.00" haber="0.00">detalle</Linea>
//	    ...
//	    <Totales debe="100.00" haber="100.00"/>
//	  </Asiento>
//	</LibroDiario>
func (e *LibroDiarioExporter) BuildJournalBook(entries []entity.JournalEntry, from, to time.Time) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("LibroDiario")
	root.CreateAttr("version", formatVersion)
	root.CreateAttr("moneda", e.currency)
	root.CreateElement("Empresa").SetText(e.companyName)

	periodo := root.CreateElement("Periodo")
	periodo.CreateAttr("desde", from.Format("2006-01-02"))
	periodo.CreateAttr("hasta", to.Format("2006-01-02"))

	for i := range entries {
		entry := &entries[i]
		asiento := root.CreateElement("Asiento")
		asiento.CreateAttr("numero", fmt.Sprintf("%d", entry.Number))
		asiento.CreateAttr("fecha", entry.Date.Format("2006-01-02"))
		asiento.CreateElement("Concepto").SetText(entry.Concept)
		if entry.SourceRef != "" {
			asiento.CreateElement("Referencia").SetText(entry.SourceRef)
		}

		for _, line := range entry.Lines {
			el := asiento.CreateElement("Linea")
			el.CreateAttr("cuenta", line.AccountCode)
			el.CreateAttr("debe", line.Debit.StringFixed(2))
			el.CreateAttr("haber", line.Credit.StringFixed(2))
			if line.Description != "" {
				el.SetText(line.Description)
			}
		}

		totales := asiento.CreateElement("Totales")
		totales.CreateAttr("debe", entry.TotalDebit().StringFixed(2))
		totales.CreateAttr("haber", entry.TotalCredit().StringFixed(2))
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("xmlexport: serializar libro diario: %w", err)
	}
	return out, nil
}

var _ appreportes.JournalBookExporter = (*LibroDiarioExporter)(nil)
