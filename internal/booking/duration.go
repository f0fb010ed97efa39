package booking

import "time"

// weekdayDuration menghitung lama booking dengan memotong 24 jam untuk
// setiap Sabtu/Minggu yang dilewati. Batas scan memakai hari kalender
// dari tanggal mulai, inklusif di kedua ujung, sehingga booking yang
// berawal dan berakhir di akhir pekan ikut terpotong pada hari itu.
func weekdayDuration(start, end time.Time) time.Duration {
	d := end.Sub(start)
	totalDays := int(d.Hours() / 24)

	for i := 0; i <= totalDays; i++ {
		day := start.AddDate(0, 0, i).Weekday()
		if day == time.Saturday || day == time.Sunday {
			d -= 24 * time.Hour
		}
	}

	return d
}

// formatDuration menyajikan durasi sebagai "<hari> days <jam> hours".
func formatDuration(d time.Duration) (days, hours int) {
	totalHours := int(d.Hours())
	return totalHours / 24, totalHours % 24
}
