package domain

// Channel is a marketing contact category.
type Channel string

const (
	ChannelAddress Channel = "Address"
	ChannelEmail   Channel = "Email"
	ChannelPhone   Channel = "Phone"
)

// Channels lists the channels in display order.
func Channels() []Channel {
	return []Channel{ChannelAddress, ChannelEmail, ChannelPhone}
}

// CorrectionType is a data-hygiene operation category.
type CorrectionType string

const (
	CorrectionNCOA CorrectionType = "NCOA"
	CorrectionPCOA CorrectionType = "PCOA"
	CorrectionPCA  CorrectionType = "PCA"
)

// CorrectionTypes lists the correction types in display order.
func CorrectionTypes() []CorrectionType {
	return []CorrectionType{CorrectionNCOA, CorrectionPCOA, CorrectionPCA}
}
