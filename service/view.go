package service

import (
	"strings"
	"time"

	"github.com/si-gho/pijar-pro-inventory/models"
)

// TransactionView adalah baris gabungan transaksi + barang + user yang
// dikonsumsi tabel riwayat, statistik, dan export laporan.
type TransactionView struct {
	ID         uint           `json:"id"`
	Date       time.Time      `json:"date"`
	Name       string         `json:"name"`
	Type       models.TrxType `json:"type"`
	Quantity   int            `json:"quantity"`
	Notes      string         `json:"notes"`
	Project    string         `json:"project"`
	Supervisor string         `json:"supervisor"`
	StockQty   int            `json:"stock_qty"`
	CreatedAt  time.Time      `json:"created_at"`
}

// Stats adalah ringkasan kartu statistik. Semua angka adalah jumlah
// transaksi, bukan akumulasi qty.
type Stats struct {
	Total            int `json:"total"`
	TotalIn          int `json:"total_masuk"`
	TotalOut         int `json:"total_keluar"`
	DistinctProjects int `json:"projects"`
}

// Aggregate menghitung statistik atas daftar transaksi.
func Aggregate(items []TransactionView) Stats {
	stats := Stats{Total: len(items)}
	projects := map[string]struct{}{}

	for _, it := range items {
		switch it.Type {
		case models.TrxMasuk:
			stats.TotalIn++
		case models.TrxKeluar:
			stats.TotalOut++
		}
		if it.Project != "" {
			projects[it.Project] = struct{}{}
		}
	}

	stats.DistinctProjects = len(projects)
	return stats
}

// TransactionFilter menyaring daftar transaksi. Semua kriteria aktif
// digabung dengan AND. DateFrom/DateTo dalam format YYYY-MM-DD, inklusif.
type TransactionFilter struct {
	Search   string
	Type     string // "" atau "all" berarti semua tipe
	DateFrom string
	DateTo   string
	Project  string
}

// FilterTransactions mengembalikan slice baru; input tidak diubah. Filter
// kosong mengembalikan isi yang sama dengan input.
func FilterTransactions(items []TransactionView, f TransactionFilter) []TransactionView {
	search := strings.ToLower(f.Search)

	out := make([]TransactionView, 0, len(items))
	for _, it := range items {
		if search != "" &&
			!strings.Contains(strings.ToLower(it.Name), search) &&
			!strings.Contains(strings.ToLower(it.Notes), search) {
			continue
		}
		if f.Type != "" && f.Type != "all" && string(it.Type) != f.Type {
			continue
		}

		day := it.Date.Format("2006-01-02")
		if f.DateFrom != "" && day < f.DateFrom {
			continue
		}
		if f.DateTo != "" && day > f.DateTo {
			continue
		}

		if f.Project != "" && it.Project != f.Project {
			continue
		}

		out = append(out, it)
	}
	return out
}
