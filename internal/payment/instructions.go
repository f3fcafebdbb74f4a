package payment

import (
	"strings"

	"marketplace-client/internal/utils"
)

const (
	MethodMomoApp = "MOMO_APP"
	MethodMomoQR  = "MOMO_QR"
	MethodCOD     = "COD"
)

var InstructionMap = map[string][]string{
	MethodMomoApp: {
		"Open the MoMo app from the link: {{link}}",
		"Check that the order is {{order_id}} and the amount is {{amount}}",
		"Confirm the payment with your MoMo PIN",
		"Return here; the order updates once MoMo confirms",
	},
	MethodMomoQR: {
		"Open the MoMo app and choose Scan QR",
		"Scan the code at {{qr_code_url}}",
		"Check that the amount is {{amount}}",
		"Confirm the payment with your MoMo PIN",
	},
	MethodCOD: {
		"Your order will be delivered to the shipping address",
		"Prepare {{amount}} in cash for the shipper",
		"Pay the shipper when the parcel arrives",
	},
}

func GetInstructions(method string) []string {
	if steps, ok := InstructionMap[method]; ok {
		return steps
	}

	return []string{
		"Follow the payment instructions shown by the payment provider",
	}
}

type InstructionVars map[string]string

// VarsFor builds the placeholder values for a created MoMo payment.
func VarsFor(p MomoPayment) InstructionVars {
	return InstructionVars{
		"link":        p.Link(),
		"order_id":    p.OrderID,
		"amount":      utils.FormatVND(p.Amount),
		"qr_code_url": p.QRCodeURL,
	}
}

func InjectVariables(
	steps []string,
	vars InstructionVars,
) []string {
	result := make([]string, 0, len(steps))

	for _, step := range steps {
		updated := step
		for key, value := range vars {
			updated = strings.ReplaceAll(
				updated,
				"{{"+key+"}}",
				value,
			)
		}
		result = append(result, updated)
	}

	return result
}
