package account

import "math/rand"

const otpDigits = 6

// GenerateOtp membentuk OTP enam digit yang semua digitnya berbeda.
// Digit diambil dari 0..8 dan dirangkai sesuai urutan pengambilan, jadi
// nilai hasilnya bisa kurang dari 100000 saat digit pertama nol.
func GenerateOtp() int {
	var used [10]bool
	otp := 0
	for i := 0; i < otpDigits; i++ {
		d := rand.Intn(9)
		for used[d] {
			d = rand.Intn(9)
		}
		used[d] = true
		otp = otp*10 + d
	}
	return otp
}
