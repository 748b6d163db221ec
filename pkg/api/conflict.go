package api

// Conflict представляет конфликт в том виде, в котором его передает сервер.
// Базовые флаги изменений приходят списком имен, расширенные - отдельным целым.
type Conflict struct {
	YourServerItem       string   `json:"ysitem"`
	YourServerItemSource string   `json:"ysitemsrc,omitempty"`
	TheirServerItem      string   `json:"tsitem"`
	BaseServerItem       string   `json:"bsitem"`
	TheirShelvesetName   string   `json:"tsname,omitempty"`
	TheirShelvesetOwner  string   `json:"tsowner,omitempty"`
	SourceLocalItem      string   `json:"srclitem,omitempty"`
	TargetLocalItem      string   `json:"tgtlitem,omitempty"`
	Type                 string   `json:"ctype"` // Get, Checkin, Local, Merge
	YourItemType         string   `json:"ytype"` // Any, Folder, File
	TheirItemType        string   `json:"ttype"`
	BaseItemType         string   `json:"btype"`
	TheirDownloadURL     string   `json:"tdurl,omitempty"`
	BaseDownloadURL      string   `json:"bdurl,omitempty"`
	Resolution           string   `json:"res,omitempty"`
	YourChangeType       []string `json:"ychg"`
	YourLocalChangeType  []string `json:"ylchg"`
	BaseChangeType       []string `json:"bchg"`
	TheirHashValue       []byte   `json:"thash,omitempty"` // MD5, base64 в JSON
	BaseHashValue        []byte   `json:"bhash,omitempty"`

	ID                     int   `json:"cid"`
	PendingChangeID        int   `json:"pcid"`
	Reason                 int   `json:"reason"`
	Options                int   `json:"copt"`
	YourItemID             int   `json:"yitemid"`
	YourVersion            int   `json:"yver"`
	YourLastMergedVersion  int   `json:"ylmver"`
	YourPropertyID         int   `json:"ypid"`
	YourDeletionID         int   `json:"ydid"`
	TheirItemID            int   `json:"titemid"`
	TheirVersion           int   `json:"tver"`
	TheirVersionFrom       int   `json:"tverfrom"`
	TheirLastMergedVersion int   `json:"tlmver"`
	TheirPropertyID        int   `json:"tpid"`
	TheirDeletionID        int   `json:"tdid"`
	BaseItemID             int   `json:"bitemid"`
	BaseVersion            int   `json:"bver"`
	BasePropertyID         int   `json:"bpid"`
	BaseDeletionID         int   `json:"bdid"`
	YourChangeTypeEx       int32 `json:"ychgEx"`
	YourLocalChangeTypeEx  int32 `json:"ylchgEx"`
	BaseChangeTypeEx       int32 `json:"bchgEx"`
	TheirChangeTypeEx      int32 `json:"tctyp"` // у their стороны только расширенные флаги
	YourEncoding           int32 `json:"yenc"`
	TheirEncoding          int32 `json:"tenc"`
	BaseEncoding           int32 `json:"benc"`

	IsNamespaceConflict bool `json:"isnamecflict"`
	IsForced            bool `json:"isforced"`
	IsResolved          bool `json:"isresolved"`
	IsShelvesetConflict bool `json:"isshelvesetconflict"`
}

// PropertyValue свойство версионируемого элемента
type PropertyValue struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// PropertiesResponse ответ со свойствами элемента
type PropertiesResponse struct {
	Properties []PropertyValue `json:"properties"`
}

// ConflictResolution выбранное разрешение одного конфликта
type ConflictResolution struct {
	NewPath               string          `json:"newpath,omitempty"`
	Resolution            string          `json:"res"`
	AcceptMergeProperties []PropertyValue `json:"props,omitempty"`
	ConflictID            int             `json:"cid"`
	NewEncoding           int32           `json:"enc,omitempty"`
}

// ResolveRequest запрос на разрешение конфликтов
type ResolveRequest struct {
	Resolutions []ConflictResolution `json:"resolutions"`
	Silent      bool                 `json:"silent,omitempty"` // не выдавать предупреждения об ошибках
}

// ResolveResponse ответ сервера с ID разрешенных конфликтов
type ResolveResponse struct {
	ResolvedIDs []int `json:"resolved"`
}

// ServiceLevelResponse уровень веб-сервисов сервера
type ServiceLevelResponse struct {
	Level int `json:"level"`
}

// ConflictsResponse список конфликтов рабочего пространства
type ConflictsResponse struct {
	Conflicts []Conflict `json:"conflicts"`
}

// FileType запись реестра типов файлов сервера
type FileType struct {
	Name                  string   `json:"name"`
	Extensions            []string `json:"extensions"`
	AllowMultipleCheckout bool     `json:"allowmultiplecheckout"`
}

// FileTypesResponse список типов файлов
type FileTypesResponse struct {
	FileTypes []FileType `json:"filetypes"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
