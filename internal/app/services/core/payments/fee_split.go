package payments

import "math"

// SplitFee divides a gross consultation amount between the platform and the
// professional. The platform share is rounded to paise and the payee share is
// the exact remainder, so the two always sum back to the gross amount.
func SplitFee(gross, platformPercent float64) (platformFee, doctorAmount float64) {
	platformFee = math.Round(gross*platformPercent) / 100
	doctorAmount = gross - platformFee
	return platformFee, doctorAmount
}
