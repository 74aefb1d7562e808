package webutil

import (
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/locales/ja" // 日本語ロケール
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	ja_translations "github.com/go-playground/validator/v10/translations/ja" // 日本語翻訳
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans はエラーメッセージを翻訳するためのトランスレータです。
var Trans ut.Translator

var fieldNameTranslations = map[string]string{
	"email":                "メールアドレス",
	"password":             "パスワード",
	"token":                "トークン",
	"new_password":         "新しいパスワード",
	"confirm_password":     "確認用パスワード",
	"new_email":            "新しいメールアドレス",
	"waiver_accepted":      "免責事項への同意",
	"liability_accepted":   "責任範囲への同意",
	"full_name":            "氏名",
	"weight":               "体重",
	"height":               "身長",
	"experience_level":     "経験レベル",
	"preferred_discipline": "希望する種目",
	"phone":                "電話番号",
	"page":                 "ページ",
}

// translatedField はjsonタグ名を日本語のフィールド名に変換します
func translatedField(fe validator.FieldError) string {
	if name, ok := fieldNameTranslations[fe.Field()]; ok {
		return name
	}
	return fe.Field()
}

func init() {
	// バリデータのインスタンスを生成
	Validator = validator.New()

	// JSONタグからフィールド名を取得するように設定
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// --- ここからが日本語化の処理 ---

	// 日本語のロケールとトランスレータを設定
	japanese := ja.New()
	uni := ut.New(japanese, japanese)
	var found bool
	Trans, found = uni.GetTranslator("ja")
	if !found {
		log.Fatal("translator not found")
	}

	// バリデータに日本語の翻訳を登録
	if err := ja_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	// 個別のエラーメッセージを上書き・カスタマイズ
	// registerParamTranslation はパラメータ ({1}) 付きのメッセージを登録するヘルパー関数
	registerParamTranslation := func(tag string, msg string) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, translatedField(fe), fe.Param())
			return t
		})
	}

	registerTranslation := func(tag string, msg string) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, translatedField(fe))
			return t
		})
	}

	registerTranslation("required", "{0}は必須項目です。")
	registerTranslation("email", "{0}は有効なメールアドレス形式ではありません。")
	registerTranslation("e164", "{0}は国番号付きの形式 (例: +819012345678) で入力してください。")
	registerTranslation("eqfield", "{0}が一致しません。")

	// 同意チェックボックス (eq=true)
	registerTranslation("eq", "{0}が必要です。")

	// oneof は候補を併記する
	registerParamTranslation("oneof", "{0}は次のいずれかを指定してください: {1}")
	// 文字列は文字数、数値は値の範囲
	registerParamTranslation("min", "{0}は{1}以上で入力してください。")
	registerParamTranslation("max", "{0}は{1}以下で入力してください。")
}
