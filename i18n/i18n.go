// Package i18n is the single lookup table for user-facing portal strings.
// Every validation and gate message is addressed by key so the English and
// Arabic texts live in one place instead of being duplicated inline per
// screen.
package i18n

import "strings"

const (
	LangEnglish = "en"
	LangArabic  = "ar"
)

var messages = map[string]map[string]string{
	"error.remote": {
		LangEnglish: "Something went wrong, please try again",
		LangArabic:  "حدث خطأ ما، يرجى المحاولة مرة أخرى",
	},
	"error.auth": {
		LangEnglish: "Your session has expired, please sign in again",
		LangArabic:  "انتهت صلاحية الجلسة، يرجى تسجيل الدخول مرة أخرى",
	},
	"error.forbidden": {
		LangEnglish: "You are not allowed to access this page",
		LangArabic:  "غير مسموح لك بالوصول إلى هذه الصفحة",
	},
	"error.notfound": {
		LangEnglish: "The requested record was not found",
		LangArabic:  "السجل المطلوب غير موجود",
	},
	"error.badjson": {
		LangEnglish: "The submitted data could not be read",
		LangArabic:  "تعذر قراءة البيانات المرسلة",
	},
	"items.required": {
		LangEnglish: "At least one service line is required",
		LangArabic:  "مطلوب سطر خدمة واحد على الأقل",
	},
	"item.service.required": {
		LangEnglish: "Service name is required",
		LangArabic:  "اسم الخدمة مطلوب",
	},
	"item.quantity.positive": {
		LangEnglish: "Quantity must be greater than zero",
		LangArabic:  "يجب أن تكون الكمية أكبر من صفر",
	},
	"item.price.negative": {
		LangEnglish: "Price cannot be negative",
		LangArabic:  "لا يمكن أن يكون السعر سالبًا",
	},
	"fare.type.invalid": {
		LangEnglish: "Fare type must be ratio or fixed",
		LangArabic:  "يجب أن يكون نوع الرسوم نسبة أو مبلغًا ثابتًا",
	},
	"tax.rate.range": {
		LangEnglish: "Tax rate must be between 0 and 1",
		LangArabic:  "يجب أن تكون نسبة الضريبة بين 0 و 1",
	},
	"downpayment.negative": {
		LangEnglish: "Down payment cannot be negative",
		LangArabic:  "لا يمكن أن تكون الدفعة المقدمة سالبة",
	},
	"downpayment.exceeds": {
		LangEnglish: "Down payment cannot exceed the invoice total",
		LangArabic:  "لا يمكن أن تتجاوز الدفعة المقدمة إجمالي الفاتورة",
	},
	"client.required": {
		LangEnglish: "Client name is required",
		LangArabic:  "اسم العميل مطلوب",
	},
	"title.required": {
		LangEnglish: "Title is required",
		LangArabic:  "العنوان مطلوب",
	},
	"dates.order": {
		LangEnglish: "End date must be after the start date",
		LangArabic:  "يجب أن يكون تاريخ الانتهاء بعد تاريخ البدء",
	},
	"date.invalid": {
		LangEnglish: "Invalid date",
		LangArabic:  "تاريخ غير صالح",
	},
	"reason.toolong": {
		LangEnglish: "Cancellation reason is too long",
		LangArabic:  "سبب الإلغاء طويل جدًا",
	},
	"name.required": {
		LangEnglish: "Name is required",
		LangArabic:  "الاسم مطلوب",
	},
	"phone.required": {
		LangEnglish: "Phone number is required",
		LangArabic:  "رقم الهاتف مطلوب",
	},
	"capacity.positive": {
		LangEnglish: "Daily capacity must be greater than zero",
		LangArabic:  "يجب أن تكون السعة اليومية أكبر من صفر",
	},
	"hours.invalid": {
		LangEnglish: "Working hours must be in HH:MM format",
		LangArabic:  "يجب أن تكون ساعات العمل بصيغة HH:MM",
	},
	"prices.required": {
		LangEnglish: "At least one price entry is required",
		LangArabic:  "مطلوب إدخال سعر واحد على الأقل",
	},
	"report.kind.invalid": {
		LangEnglish: "Unknown report type",
		LangArabic:  "نوع التقرير غير معروف",
	},
}

// T returns the message for key in lang, falling back to English, and to the
// key itself when the key is unknown.
func T(lang, key string) string {
	byLang, ok := messages[key]
	if !ok {
		return key
	}
	if msg, ok := byLang[lang]; ok {
		return msg
	}
	return byLang[LangEnglish]
}

// Negotiate picks a supported language from a lang query value and an
// Accept-Language header, in that order. Anything unrecognized falls back
// to the given default.
func Negotiate(query, acceptLanguage, fallback string) string {
	if l := normalize(query); l != "" {
		return l
	}
	for _, part := range strings.Split(acceptLanguage, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if l := normalize(tag); l != "" {
			return l
		}
	}
	return fallback
}

func normalize(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	switch {
	case tag == LangEnglish || strings.HasPrefix(tag, "en-"):
		return LangEnglish
	case tag == LangArabic || strings.HasPrefix(tag, "ar-"):
		return LangArabic
	}
	return ""
}
