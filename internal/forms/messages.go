package forms

// messages holds the inline error text per field and failed rule.
var messages = map[string]map[string]string{
	FieldEmail: {
		"required":   "ایمیل الزامی است",
		"emailshape": "فرمت ایمیل صحیح نیست",
	},
	FieldPassword: {
		"required": "رمز عبور الزامی است",
		"min":      "رمز عبور باید حداقل ۶ کاراکتر باشد",
	},
	FieldFullName: {
		"notblank": "نام و نام خانوادگی الزامی است",
	},
	FieldPhone: {
		"required": "شماره تماس الزامی است",
	},
	FieldFieldOfStudy: {
		"required": "انتخاب رشته تحصیلی / شغل الزامی است",
		"oneof":    "گزینه انتخاب شده معتبر نیست",
	},
	FieldConfirmPassword: {
		"required": "تکرار رمز عبور الزامی است",
		"eqfield":  "رمز عبور و تکرار آن یکسان نیستند",
	},
	FieldAcceptTerms: {
		"required": "پذیرش قوانین و مقررات الزامی است",
	},
}

const fallbackMessage = "مقدار وارد شده معتبر نیست"

// generalMessages is shown above the form when a submission fails as a whole.
var generalMessages = map[Kind]string{
	KindLogin:  "خطا در ورود. لطفاً دوباره تلاش کنید.",
	KindSignup: "خطا در ثبت نام. لطفاً دوباره تلاش کنید.",
}

func message(field, tag string) string {
	if m, ok := messages[field][tag]; ok {
		return m
	}
	return fallbackMessage
}
