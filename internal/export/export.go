// Package export renders the inventory as CSV for claims paperwork.
// Column names and value formatting follow the damage-assessment forms
// the rows end up pasted into, so the headers are Thai.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/naphat/floodkit/internal/inventory"
	"github.com/naphat/floodkit/internal/model"
	"github.com/naphat/floodkit/internal/valuation"
)

var itemHeaders = []string{
	"ID",
	"หมวดหมู่",
	"หมวดย่อย",
	"ชื่อทรัพย์สิน",
	"รายละเอียด/รุ่น",
	"จำนวน",
	"หน่วย",
	"ราคาซื้อเดิม/หน่วย",
	"ปีที่ซื้อ",
	"อายุการใช้งาน (ปี)",
	"มูลค่าปัจจุบัน/หน่วย",
	"ระดับความเสียหาย",
	"% ความเสียหาย",
	"มูลค่าความเสียหายรวม",
	"ลักษณะความเสียหาย",
	"ประเภทความเสียหาย",
	"สถานะซ่อม",
	"ค่าซ่อมประเมิน",
	"หมายเหตุ",
}

// ItemsCSV writes one row per inventory item. categoryName resolves a
// category id to its display name (falling back to the raw id for
// categories that no longer exist).
func ItemsCSV(w io.Writer, items []model.InventoryItem, categoryName func(string) string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(itemHeaders); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, item := range items {
		row := []string{
			item.ID,
			categoryName(item.CategoryID),
			orDash(item.SubCategory),
			item.Name,
			orDash(item.Description),
			strconv.Itoa(item.Quantity),
			item.Unit,
			number(floatOrZero(item.OriginalPrice)),
			purchaseYear(item.PurchaseDate),
			ageYears(item.AgeYears),
			number(item.CurrentValuePerUnit),
			valuation.DamageLevelLabel(item.DamageLevel),
			number(item.DamagePercent) + "%",
			number(item.TotalDamageValue),
			item.DamageDetail,
			item.DamageType,
			valuation.RepairStatusLabel(item.RepairStatus),
			number(floatOrZero(item.RepairCostEstimate)),
			orDash(item.Note),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

var summaryHeaders = []string{
	"หมวดหมู่",
	"จำนวนรายการ",
	"จำนวนชิ้นรวม",
	"มูลค่าความเสียหายรวม",
}

// SummaryCSV writes the per-category damage summary followed by a
// grand-total row.
func SummaryCSV(w io.Writer, summaries []inventory.CategorySummary, totals inventory.Totals) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(summaryHeaders); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, sum := range summaries {
		row := []string{
			sum.Name,
			strconv.Itoa(sum.ItemCount),
			strconv.Itoa(sum.TotalQuantity),
			number(sum.TotalDamageValue),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	total := []string{
		"รวมทั้งหมด",
		strconv.Itoa(totals.ItemCount),
		strconv.Itoa(totals.TotalQuantity),
		number(totals.TotalDamageValue),
	}
	if err := cw.Write(total); err != nil {
		return fmt.Errorf("write csv total row: %w", err)
	}

	cw.Flush()
	return cw.Error()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func purchaseYear(date string) string {
	if date == "" {
		return "-"
	}
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "-"
	}
	return strconv.Itoa(t.Year())
}

func ageYears(v *int) string {
	if v == nil || *v == 0 {
		return "-"
	}
	return strconv.Itoa(*v)
}
