package entity

// Setting is a process-wide key/value configuration entry (store identity,
// receipt layout, printer and SMTP parameters).
type Setting struct {
	Key   string `gorm:"primaryKey;size:100" json:"key"`
	Value string `gorm:"type:text" json:"value"`
}

// TableName returns the table name for the Setting model
func (Setting) TableName() string {
	return "settings"
}

// Setting keys consumed by the receipt engine.
const (
	SettingStoreName     = "store_name"
	SettingStoreAddress  = "store_address"
	SettingStorePhone    = "store_phone"
	SettingReceiptFooter = "receipt_footer"
	SettingCharsPerLine  = "chars_per_line"
	SettingLineSpacing   = "line_spacing"
	SettingPaperSize     = "paper_size"

	SettingSMTPServer = "smtp_server"
	SettingSMTPPort   = "smtp_port"
	SettingSMTPUser   = "smtp_user"
	SettingSMTPPass   = "smtp_pass"
)
