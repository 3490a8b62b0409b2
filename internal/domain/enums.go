package domain

// Role represents the access level of a user.
type Role string

const (
	RoleMember Role = "MEMBER"
	RoleAdmin  Role = "ADMIN"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleMember, RoleAdmin:
		return true
	}
	return false
}

// Capability identifies a class of AI workload routed across providers.
type Capability string

const (
	CapabilityEmbeddings Capability = "EMBEDDINGS"
	CapabilityGeneration Capability = "GENERATION"
	CapabilityImageEdit  Capability = "IMAGE_EDIT"
)

func (c Capability) String() string { return string(c) }

func (c Capability) IsValid() bool {
	switch c {
	case CapabilityEmbeddings, CapabilityGeneration, CapabilityImageEdit:
		return true
	}
	return false
}

// Provider identifies a third-party AI vendor.
type Provider string

const (
	ProviderOpenAI    Provider = "OPENAI"
	ProviderCohere    Provider = "COHERE"
	ProviderStability Provider = "STABILITY"
)

func (p Provider) String() string { return string(p) }

func (p Provider) IsValid() bool {
	switch p {
	case ProviderOpenAI, ProviderCohere, ProviderStability:
		return true
	}
	return false
}

// EditOperation represents the kind of image edit performed.
type EditOperation string

const (
	EditOperationInpaint          EditOperation = "INPAINT"
	EditOperationOutpaint         EditOperation = "OUTPAINT"
	EditOperationRemoveBackground EditOperation = "REMOVE_BACKGROUND"
	EditOperationSearchReplace    EditOperation = "SEARCH_REPLACE"
	EditOperationUpscale          EditOperation = "UPSCALE"
)

func (o EditOperation) String() string { return string(o) }

func (o EditOperation) IsValid() bool {
	switch o {
	case EditOperationInpaint, EditOperationOutpaint, EditOperationRemoveBackground,
		EditOperationSearchReplace, EditOperationUpscale:
		return true
	}
	return false
}

// CampaignStatus represents the lifecycle state of a campaign.
type CampaignStatus string

const (
	CampaignStatusDraft    CampaignStatus = "DRAFT"
	CampaignStatusActive   CampaignStatus = "ACTIVE"
	CampaignStatusArchived CampaignStatus = "ARCHIVED"
)

func (s CampaignStatus) String() string { return string(s) }

func (s CampaignStatus) IsValid() bool {
	switch s {
	case CampaignStatusDraft, CampaignStatusActive, CampaignStatusArchived:
		return true
	}
	return false
}
