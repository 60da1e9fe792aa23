// Package fieldspec is the declarative table of typed stream fields. Each
// entry names a reader method, the engine parameter it queries and how the
// value is decoded. genfields renders the table into the root package.
package fieldspec

// Decode selects how a field value is converted.
type Decode string

const (
	String   Decode = "string"   // text as returned
	Int      Decode = "int"      // base-10 signed 64-bit integer
	Duration Decode = "duration" // unsigned milliseconds
	Time     Decode = "time"     // "2006-01-02 15:04:05 UTC"
)

// Field is one typed reader.
type Field struct {
	Name   string // Go method name
	Param  string // engine parameter
	Decode Decode
}

// Category groups the fields of one stream kind.
type Category struct {
	Kind   string // StreamKind constant
	Type   string // stream type name
	Fields []Field
}

// Categories lists every stream kind in engine order.
var Categories = []Category{
	{
		Kind:   "StreamGeneral",
		Type:   "GeneralStream",
		Fields: []Field{
			{"CodecID", "CodecID", String},
			{"Format", "Format", String},
			{"FormatProfile", "Format_Profile", String},
			{"FormatInfo", "Format_Info", String},
			{"Codec", "Codec", String},
			{"EncodedApplicationString", "Encoded_Application/String", String},
			{"EncodedApplication", "Encoded_Application", String},
			{"EncodedLibrary", "Encoded_Library", String},
			{"Artist", "Artist", String},
			{"Performer", "Performer", String},
			{"Title", "Title", String},
			{"Copyright", "Copyright", String},
			{"Genre", "Genre", String},
			{"Album", "Album", String},
			{"Year", "Year", String},
			{"GeneralCount", "GeneralCount", Int},
			{"VideoCount", "VideoCount", Int},
			{"AudioCount", "AudioCount", Int},
			{"TextCount", "TextCount", Int},
			{"OtherCount", "OtherCount", Int},
			{"ImageCount", "ImageCount", Int},
			{"MenuCount", "MenuCount", Int},
			{"AudioChannelsTotal", "Audio_Channels_Total", Int},
			{"VideoFormatList", "Video_Format_List", String},
			{"VideoFormatWithHintList", "Video_Format_WithHint_List", String},
			{"VideoLanguageList", "Video_Language_List", String},
			{"AudioFormatList", "Audio_Format_List", String},
			{"AudioFormatWithHintList", "Audio_Format_WithHint_List", String},
			{"AudioLanguageList", "Audio_Language_List", String},
			{"TextFormatList", "Text_Format_List", String},
			{"TextFormatWithHintList", "Text_Format_WithHint_List", String},
			{"TextLanguageList", "Text_Language_List", String},
			{"OtherFormatList", "Other_Format_List", String},
			{"OtherFormatWithHintList", "Other_Format_WithHint_List", String},
			{"OtherLanguageList", "Other_Language_List", String},
			{"ImageFormatList", "Image_Format_List", String},
			{"ImageFormatWithHintList", "Image_Format_WithHint_List", String},
			{"ImageLanguageList", "Image_Language_List", String},
			{"MenuFormatList", "Menu_Format_List", String},
			{"MenuFormatWithHintList", "Menu_Format_WithHint_List", String},
			{"MenuLanguageList", "Menu_Language_List", String},
			{"CompleteName", "CompleteName", String},
			{"FolderName", "FolderName", String},
			{"FileNameExtension", "FileNameExtension", String},
			{"FileName", "FileName", String},
			{"FileExtension", "FileExtension", String},
			{"CompleteNameLast", "CompleteName_Last", String},
			{"FolderNameLast", "FolderName_Last", String},
			{"FileNameExtensionLast", "FileNameExtension_Last", String},
			{"FileNameLast", "FileName_Last", String},
			{"FileExtensionLast", "FileExtension_Last", String},
			{"FormatExtensions", "Format_Extensions", String},
			{"FormatLevel", "Format_Level", String},
			{"InternetMediaType", "InternetMediaType", String},
			{"CodecIDVersion", "CodecID_Version", String},
			{"CodecIDCompatible", "CodecID_Compatible", String},
			{"Interleaved", "Interleaved", String},
			{"FileSize", "FileSize", String},
			{"FileSizeString", "FileSize/String", String},
			{"FileSizeString1", "FileSize/String1", String},
			{"FileSizeString2", "FileSize/String2", String},
			{"FileSizeString3", "FileSize/String3", String},
			{"FileSizeString4", "FileSize/String4", String},
			{"Duration", "Duration", Duration},
			{"DurationString", "Duration/String", String},
			{"DurationString1", "Duration/String1", String},
			{"DurationString2", "Duration/String2", String},
			{"DurationString3", "Duration/String3", String},
			{"DurationString4", "Duration/String4", String},
			{"DurationString5", "Duration/String5", String},
			{"DurationStart", "Duration_Start", Int},
			{"DurationStartString", "Duration_Start/String", String},
			{"DurationStartString1", "Duration_Start/String1", String},
			{"DurationStartString2", "Duration_Start/String2", String},
			{"DurationStartString3", "Duration_Start/String3", String},
			{"DurationStartString4", "Duration_Start/String4", String},
			{"DurationStartString5", "Duration_Start/String5", String},
			{"DurationEnd", "Duration_End", Int},
			{"DurationEndString", "Duration_End/String", String},
			{"DurationEndString1", "Duration_End/String1", String},
			{"DurationEndString2", "Duration_End/String2", String},
			{"DurationEndString3", "Duration_End/String3", String},
			{"DurationEndString4", "Duration_End/String4", String},
			{"DurationEndString5", "Duration_End/String5", String},
			{"OverallBitRateMode", "OverallBitRate_Mode", String},
			{"OverallBitRateModeString", "OverallBitRate_Mode/String", String},
			{"OverallBitRate", "OverallBitRate", Int},
			{"OverallBitRateString", "OverallBitRate/String", String},
			{"OverallBitRateMinimum", "OverallBitRate_Minimum", Int},
			{"OverallBitRateMinimumString", "OverallBitRate_Minimum/String", String},
			{"OverallBitRateNominal", "OverallBitRate_Nominal", Int},
			{"OverallBitRateNominalString", "OverallBitRate_Nominal/String", String},
			{"OverallBitRateMaximum", "OverallBitRate_Maximum", Int},
			{"OverallBitRateMaximumString", "OverallBitRate_Maximum/String", String},
			{"FrameRate", "FrameRate", Int},
			{"FrameRateString", "FrameRate/String", String},
			{"FrameRateNum", "FrameRate_Num", Int},
			{"FrameRateDen", "FrameRate_Den", Int},
			{"FrameCount", "FrameCount", Int},
			{"Delay", "Delay", Int},
			{"DelayString", "Delay/String", String},
			{"DelayString1", "Delay/String1", String},
			{"DelayString2", "Delay/String2", String},
			{"DelayString3", "Delay/String3", String},
			{"DelayString4", "Delay/String4", String},
			{"DelayString5", "Delay/String5", String},
			{"DelaySettings", "Delay_Settings", String},
			{"DelayDropFrame", "Delay_DropFrame", String},
			{"DelaySource", "Delay_Source", String},
			{"DelaySourceString", "Delay_Source/String", String},
			{"StreamSize", "StreamSize", Int},
			{"StreamSizeString", "StreamSize/String", String},
			{"StreamSizeString1", "StreamSize/String1", String},
			{"StreamSizeString2", "StreamSize/String2", String},
			{"StreamSizeString3", "StreamSize/String3", String},
			{"StreamSizeString4", "StreamSize/String4", String},
			{"StreamSizeString5", "StreamSize/String5", String},
			{"StreamSizeProportion", "StreamSize_Proportion", String},
			{"StreamSizeDemuxed", "StreamSize_Demuxed", Int},
			{"StreamSizeDemuxedString", "StreamSize_Demuxed/String", String},
			{"StreamSizeDemuxedString1", "StreamSize_Demuxed/String1", String},
			{"StreamSizeDemuxedString2", "StreamSize_Demuxed/String2", String},
			{"StreamSizeDemuxedString3", "StreamSize_Demuxed/String3", String},
			{"StreamSizeDemuxedString4", "StreamSize_Demuxed/String4", String},
			{"StreamSizeDemuxedString5", "StreamSize_Demuxed/String5", String},
			{"Headersize", "HeaderSize", Int},
			{"Datasize", "DataSize", Int},
			{"Footersize", "FooterSize", Int},
			{"IsStreamable", "IsStreamable", String},
			{"AlbumReplayGainGain", "Album_ReplayGain_Gain", String},
			{"AlbumReplayGainGainString", "Album_ReplayGain_Gain/String", String},
			{"AlbumReplayGainPeak", "Album_ReplayGain_Peak", String},
			{"Encryption", "Encryption", String},
			{"EncryptionFormat", "Encryption_Format", String},
			{"EncryptionLength", "Encryption_Length", String},
			{"EncryptionMethod", "Encryption_Method", String},
			{"EncryptionMode", "Encryption_Mode", String},
			{"EncryptionPadding", "Encryption_Padding", String},
			{"EncryptionInitializationVector", "Encryption_InitializationVector", String},
			{"MasteredDate", "Mastered_Date", Time},
			{"LastModificationDate", "File_Modified_Date", Time},
			{"EncodedDate", "Encoded_Date", Time},
			{"TaggedDate", "Tagged_Date", Time},
		},
	},
	{
		Kind:   "StreamVideo",
		Type:   "VideoStream",
		Fields: []Field{
			{"StreamID", "ID", String},
			{"Format", "Format", String},
			{"FormatInfo", "Format_Info", String},
			{"FormatProfile", "Format_Profile", String},
			{"FormatVersion", "Format_Version", String},
			{"FormatLevel", "Format_Level", String},
			{"FormatTier", "Format_Tier", String},
			{"FormatCommercial", "Format_Commercial", String},
			{"FormatSettingsCABAC", "Format_Settings_CABAC", String},
			{"FormatSettingsCABACString", "Format_Settings_CABAC/String", String},
			{"FormatSettingsReframes", "Format_Settings_ReFrames", String},
			{"FormatSettingsReframesString", "Format_Settings_ReFrames/String", String},
			{"FormatSettingsRefFrames", "Format_Settings_RefFrames", Int},
			{"FormatSettingsRefFramesString", "Format_Settings_RefFrames/String", String},
			{"FormatSettingsMatrix", "Format_Settings_Matrix", String},
			{"FormatSettingsMatrixString", "Format_Settings_Matrix/String", String},
			{"FormatSettingsMatrixData", "Format_Settings_Matrix_Data", String},
			{"FormatSettingsGOP", "Format_Settings_GOP", String},
			{"FormatSettingsBVOP", "Format_Settings_BVOP", String},
			{"FormatSettingsBVOPString", "Format_Settings_BVOP/String", String},
			{"FormatSettingsQPEL", "Format_Settings_QPel", String},
			{"FormatSettingsQPELString", "Format_Settings_QPel/String", String},
			{"FormatSettingsGMC", "Format_Settings_GMC", Int},
			{"FormatSettingsGMCString", "Format_Settings_GMC/String", String},
			{"FormatSettingsPulldown", "Format_Settings_Pulldown", String},
			{"FormatSettingsEndianness", "Format_Settings_Endianness", String},
			{"FormatSettingsPacking", "Format_Settings_Packing", String},
			{"FormatSettingsFrameMode", "Format_Settings_FrameMode", String},
			{"FormatSettingsPictureStructure", "Format_Settings_PictureStructure", String},
			{"FormatSettingsWrapping", "Format_Settings_Wrapping", String},
			{"FormatSettingsSliceCount", "Format_Settings_SliceCount", Int},
			{"FormatSettingsSliceCountString", "Format_Settings_SliceCount/String", String},
			{"CodecID", "CodecID", String},
			{"CodecInfo", "CodecID/Info", String},
			{"Codec", "Codec", String},
			{"MultiviewBaseProfile", "MultiView_BaseProfile", String},
			{"MultiviewCount", "MultiView_Count", String},
			{"MultiviewLayout", "MultiView_Layout", String},
			{"HDRFormat", "HDR_Format", String},
			{"HDRFormatString", "HDR_Format/String", String},
			{"HDRFormatCommercial", "HDR_Format_Commercial", String},
			{"HDRFormatVersion", "HDR_Format_Version", String},
			{"HDRFormatProfile", "HDR_Format_Profile", String},
			{"HDRFormatLevel", "HDR_Format_Level", String},
			{"HDRFormatSettings", "HDR_Format_Settings", String},
			{"HDRFormatCompression", "HDR_Format_Compression", String},
			{"HDRFormatCompatibility", "HDR_Format_Compatibility", String},
			{"InternetMediaType", "InternetMediaType", String},
			{"MuxingMode", "MuxingMode", String},
			{"Duration", "Duration", Duration},
			{"DurationString", "Duration/String", String},
			{"DurationString1", "Duration/String1", String},
			{"DurationString2", "Duration/String2", String},
			{"DurationString3", "Duration/String3", String},
			{"DurationString4", "Duration/String4", String},
			{"DurationString5", "Duration/String5", String},
			{"DurationFirstFrame", "Duration_FirstFrame", Int},
			{"DurationFirstFrameString", "Duration_FirstFrame/String", String},
			{"DurationFirstFrameString1", "Duration_FirstFrame/String1", String},
			{"DurationFirstFrameString2", "Duration_FirstFrame/String2", String},
			{"DurationFirstFrameString3", "Duration_FirstFrame/String3", String},
			{"DurationFirstFrameString4", "Duration_FirstFrame/String4", String},
			{"DurationFirstFrameString5", "Duration_FirstFrame/String5", String},
			{"DurationLastFrame", "Duration_LastFrame", Int},
			{"DurationLastFrameString", "Duration_LastFrame/String", String},
			{"DurationLastFrameString1", "Duration_LastFrame/String1", String},
			{"DurationLastFrameString2", "Duration_LastFrame/String2", String},
			{"DurationLastFrameString3", "Duration_LastFrame/String3", String},
			{"DurationLastFrameString4", "Duration_LastFrame/String4", String},
			{"DurationLastFrameString5", "Duration_LastFrame/String5", String},
			{"SourceDuration", "Source_Duration", Int},
			{"SourceDurationString", "Source_Duration/String", String},
			{"SourceDurationString1", "Source_Duration/String1", String},
			{"SourceDurationString2", "Source_Duration/String2", String},
			{"SourceDurationString3", "Source_Duration/String3", String},
			{"SourceDurationString4", "Source_Duration/String4", String},
			{"SourceDurationString5", "Source_Duration/String5", String},
			{"SourceDurationFirstFrame", "Source_Duration_FirstFrame", Int},
			{"SourceDurationFirstFrameString", "Source_Duration_FirstFrame/String", String},
			{"SourceDurationFirstFrameString1", "Source_Duration_FirstFrame/String1", String},
			{"SourceDurationFirstFrameString2", "Source_Duration_FirstFrame/String2", String},
			{"SourceDurationFirstFrameString3", "Source_Duration_FirstFrame/String3", String},
			{"SourceDurationFirstFrameString4", "Source_Duration_FirstFrame/String4", String},
			{"SourceDurationFirstFrameString5", "Source_Duration_FirstFrame/String5", String},
			{"SourceDurationLastFrame", "Source_Duration_LastFrame", Int},
			{"SourceDurationLastFrameString", "Source_Duration_LastFrame/String", String},
			{"SourceDurationLastFrameString1", "Source_Duration_LastFrame/String1", String},
			{"SourceDurationLastFrameString2", "Source_Duration_LastFrame/String2", String},
			{"SourceDurationLastFrameString3", "Source_Duration_LastFrame/String3", String},
			{"SourceDurationLastFrameString4", "Source_Duration_LastFrame/String4", String},
			{"SourceDurationLastFrameString5", "Source_Duration_LastFrame/String5", String},
			{"BitRateMode", "BitRate_Mode", String},
			{"BitRateModeString", "BitRate_Mode/String", String},
			{"BitRate", "BitRate", String},
			{"BitRateString", "BitRate/String", String},
			{"BitRateMinimum", "BitRate_Minimum", Int},
			{"BitRateMinimumString", "BitRate_Minimum/String", String},
			{"NominalBitRate", "BitRate_Nominal", String},
			{"BitRateNominalString", "BitRate_Nominal/String", String},
			{"BitRateMaximum", "BitRate_Maximum", Int},
			{"BitRateMaximumString", "BitRate_Maximum/String", String},
			{"BitRateEncoded", "BitRate_Encoded", Int},
			{"BitRateEncodedString", "BitRate_Encoded/String", String},
			{"Width", "Width", Int},
			{"WidthString", "Width/String", String},
			{"WidthOffset", "Width_Offset", Int},
			{"WidthOffsetString", "Width_Offset/String", String},
			{"WidthOriginal", "Width_Original", Int},
			{"WidthOriginalString", "Width_Original/String", String},
			{"WidthCleanAperture", "Width_CleanAperture", Int},
			{"WidthCleanApertureString", "Width_CleanAperture/String", String},
			{"Height", "Height", Int},
			{"HeightString", "Height/String", String},
			{"HeightOffset", "Height_Offset", Int},
			{"HeightOffsetString", "Height_Offset/String", String},
			{"HeightOriginal", "Height_Original", Int},
			{"HeightOriginalString", "Height_Original/String", String},
			{"HeightCleanAperture", "Height_CleanAperture", Int},
			{"HeightCleanApertureString", "Height_CleanAperture/String", String},
			{"StoredWidth", "Stored_Width", Int},
			{"StoredHeight", "Stored_Height", Int},
			{"SampledWidth", "Sampled_Width", Int},
			{"SampledHeight", "Sampled_Height", Int},
			{"PixelAspectRatio", "PixelAspectRatio", String},
			{"PixelAspectRatioString", "PixelAspectRatio/String", String},
			{"PixelAspectRatioOriginal", "PixelAspectRatio_Original", String},
			{"PixelAspectRatioOriginalString", "PixelAspectRatio_Original/String", String},
			{"PixelAspectRatioCleanAperture", "PixelAspectRatio_CleanAperture", String},
			{"PixelAspectRatioCleanApertureString", "PixelAspectRatio_CleanAperture/String", String},
			{"DisplayAspectRatio", "DisplayAspectRatio", String},
			{"DisplayAspectRatioString", "DisplayAspectRatio/String", String},
			{"DisplayAspectRatioOriginal", "DisplayAspectRatio_Original", String},
			{"DisplayAspectRatioOriginalString", "DisplayAspectRatio_Original/String", String},
			{"DisplayAspectRatioCleanAperture", "DisplayAspectRatio_CleanAperture", String},
			{"DisplayAspectRatioCleanApertureString", "DisplayAspectRatio_CleanAperture/String", String},
			{"ActiveFormatDescription", "ActiveFormatDescription", String},
			{"ActiveFormatDescriptionString", "ActiveFormatDescription/String", String},
			{"ActiveFormatDescriptionMuxingMode", "ActiveFormatDescription_MuxingMode", String},
			{"ActiveWidth", "Active_Width", Int},
			{"ActiveWidthString", "Active_Width/String", String},
			{"ActiveHeight", "Active_Height", Int},
			{"ActiveHeightString", "Active_Height/String", String},
			{"ActiveDisplayAspectRatio", "Active_DisplayAspectRatio", String},
			{"ActiveDisplayAspectRatioString", "Active_DisplayAspectRatio/String", String},
			{"Rotation", "Rotation", String},
			{"RotationString", "Rotation/String", String},
			{"FrameRateMode", "FrameRate_Mode", String},
			{"FrameRateModeString", "FrameRate_Mode/String", String},
			{"FrameRateModeOriginal", "FrameRate_Mode_Original", String},
			{"FrameRateModeOriginalString", "FrameRate_Mode_Original/String", String},
			{"FrameRate", "FrameRate", String},
			{"FrameRateString", "FrameRate/String", String},
			{"FrameRateNum", "FrameRate_Num", Int},
			{"FrameRateDen", "FrameRate_Den", Int},
			{"MinimumFrameRate", "FrameRate_Minimum", String},
			{"FrameRateMinimumString", "FrameRate_Minimum/String", String},
			{"NominalFrameRate", "FrameRate_Nominal", String},
			{"FrameRateNominalString", "FrameRate_Nominal/String", String},
			{"MaximumFrameRate", "FrameRate_Maximum", String},
			{"FrameRateMaximumString", "FrameRate_Maximum/String", String},
			{"FrameRateOriginal", "FrameRate_Original", String},
			{"FrameRateOriginalString", "FrameRate_Original/String", String},
			{"FrameRateOriginalNum", "FrameRate_Original_Num", Int},
			{"FrameRateOriginalDen", "FrameRate_Original_Den", Int},
			{"FrameRateReal", "FrameRate_Real", String},
			{"FrameRateRealString", "FrameRate_Real/String", String},
			{"FrameCount", "FrameCount", Int},
			{"SourceFrameCount", "Source_FrameCount", Int},
			{"Standard", "Standard", String},
			{"Colorspace", "ColorSpace", String},
			{"ChromaSubsampling", "ChromaSubsampling", String},
			{"ChromaSubsamplingString", "ChromaSubsampling/String", String},
			{"ChromaSubsamplingPosition", "ChromaSubsampling_Position", String},
			{"Bitdepth", "BitDepth", Int},
			{"BitDepthString", "BitDepth/String", String},
			{"ScanType", "ScanType", String},
			{"ScanTypeString", "ScanType/String", String},
			{"ScanTypeOriginal", "ScanType_Original", String},
			{"ScanTypeOriginalString", "ScanType_Original/String", String},
			{"ScanTypeStoreMethod", "ScanType_StoreMethod", String},
			{"ScanTypeStoreMethodFieldsPerBlock", "ScanType_StoreMethod_FieldsPerBlock", String},
			{"ScanTypeStoreMethodString", "ScanType_StoreMethod/String", String},
			{"ScanOrder", "ScanOrder", String},
			{"ScanOrderString", "ScanOrder/String", String},
			{"ScanOrderStored", "ScanOrder_Stored", String},
			{"ScanOrderStoredString", "ScanOrder_Stored/String", String},
			{"ScanOrderStoredDisplayedInverted", "ScanOrder_StoredDisplayedInverted", String},
			{"ScanOrderOriginal", "ScanOrder_Original", String},
			{"ScanOrderOriginalString", "ScanOrder_Original/String", String},
			{"CompressionMode", "Compression_Mode", String},
			{"CompressionModeString", "Compression_Mode/String", String},
			{"CompressionRatio", "Compression_Ratio", String},
			{"BitsPixelFrame", "Bits-(Pixel*Frame)", String},
			{"Resolution", "Resolution", Int},
			{"StreamSize", "StreamSize", String},
			{"StreamSizeString", "StreamSize/String", String},
			{"StreamSizeString1", "StreamSize/String1", String},
			{"StreamSizeString2", "StreamSize/String2", String},
			{"StreamSizeString3", "StreamSize/String3", String},
			{"StreamSizeString4", "StreamSize/String4", String},
			{"StreamSizeString5", "StreamSize/String5", String},
			{"StreamSizeProportion", "StreamSize_Proportion", String},
			{"EncodedDate", "Encoded_Date", Time},
			{"TaggedDate", "Tagged_Date", Time},
		},
	},
	{
		Kind:   "StreamAudio",
		Type:   "AudioStream",
		Fields: []Field{
			{"StreamID", "ID", String},
			{"Format", "Format", String},
			{"FormatString", "Format/String", String},
			{"FormatInfo", "Format_Info", String},
			{"FormatURL", "Format_Url", String},
			{"FormatCommercial", "Format_Commercial", String},
			{"FormatCommercialIfAny", "Format_Commercial_IfAny", String},
			{"FormatVersion", "Format_Version", String},
			{"FormatProfile", "Format_Profile", String},
			{"FormatCompression", "Format_Compression", String},
			{"FormatSettings", "Format_Settings", String},
			{"FormatAdditionalFeatures", "Format_AdditionalFeatures", String},
			{"FormatLevel", "Format_Level", String},
			{"FormatSettingsSBR", "Format_Settings_SBR", String},
			{"FormatSettingsSBRString", "Format_Settings_SBR/String", String},
			{"FormatSettingsPS", "Format_Settings_PS", String},
			{"FormatSettingsPSString", "Format_Settings_PS/String", String},
			{"FormatSettingsMode", "Format_Settings_Mode", String},
			{"FormatSettingsModeExtension", "Format_Settings_ModeExtension", String},
			{"FormatSettingsEmphasis", "Format_Settings_Emphasis", String},
			{"FormatSettingsFloor", "Format_Settings_Floor", String},
			{"FormatSettingsFirm", "Format_Settings_Firm", String},
			{"FormatSettingsEndianness", "Format_Settings_Endianness", String},
			{"FormatSettingsSign", "Format_Settings_Sign", String},
			{"FormatSettingsLaw", "Format_Settings_Law", String},
			{"FormatSettingsITU", "Format_Settings_ITU", String},
			{"FormatSettingsWrapping", "Format_Settings_Wrapping", String},
			{"MatrixFormat", "Matrix_Format", String},
			{"CodecID", "CodecID", String},
			{"CodecIDString", "CodecID/String", String},
			{"CodecInfo", "CodecID/Info", String},
			{"CodecIDHint", "CodecID/Hint", String},
			{"CodecIDURL", "CodecID/Url", String},
			{"CodecIDDescription", "CodecID_Description", String},
			{"InternetMediaType", "InternetMediaType", String},
			{"MuxingMode", "MuxingMode", String},
			{"MuxingModeMoreInfo", "MuxingMode_MoreInfo", String},
			{"Duration", "Duration", Duration},
			{"DurationString", "Duration/String", String},
			{"DurationString1", "Duration/String1", String},
			{"DurationString2", "Duration/String2", String},
			{"DurationString3", "Duration/String3", String},
			{"DurationString4", "Duration/String4", String},
			{"DurationString5", "Duration/String5", String},
			{"DurationFirstFrame", "Duration_FirstFrame", Int},
			{"DurationFirstFrameString", "Duration_FirstFrame/String", String},
			{"DurationFirstFrameString1", "Duration_FirstFrame/String1", String},
			{"DurationFirstFrameString2", "Duration_FirstFrame/String2", String},
			{"DurationFirstFrameString3", "Duration_FirstFrame/String3", String},
			{"DurationFirstFrameString4", "Duration_FirstFrame/String4", String},
			{"DurationFirstFrameString5", "Duration_FirstFrame/String5", String},
			{"DurationLastFrame", "Duration_LastFrame", Int},
			{"DurationLastFrameString", "Duration_LastFrame/String", String},
			{"DurationLastFrameString1", "Duration_LastFrame/String1", String},
			{"DurationLastFrameString2", "Duration_LastFrame/String2", String},
			{"DurationLastFrameString3", "Duration_LastFrame/String3", String},
			{"DurationLastFrameString4", "Duration_LastFrame/String4", String},
			{"DurationLastFrameString5", "Duration_LastFrame/String5", String},
			{"SourceDuration", "Source_Duration", Int},
			{"SourceDurationString", "Source_Duration/String", String},
			{"SourceDurationString1", "Source_Duration/String1", String},
			{"SourceDurationString2", "Source_Duration/String2", String},
			{"SourceDurationString3", "Source_Duration/String3", String},
			{"SourceDurationString4", "Source_Duration/String4", String},
			{"SourceDurationString5", "Source_Duration/String5", String},
			{"SourceDurationFirstFrame", "Source_Duration_FirstFrame", Int},
			{"SourceDurationFirstFrameString", "Source_Duration_FirstFrame/String", String},
			{"SourceDurationFirstFrameString1", "Source_Duration_FirstFrame/String1", String},
			{"SourceDurationFirstFrameString2", "Source_Duration_FirstFrame/String2", String},
			{"SourceDurationFirstFrameString3", "Source_Duration_FirstFrame/String3", String},
			{"SourceDurationFirstFrameString4", "Source_Duration_FirstFrame/String4", String},
			{"SourceDurationFirstFrameString5", "Source_Duration_FirstFrame/String5", String},
			{"SourceDurationLastFrame", "Source_Duration_LastFrame", Int},
			{"SourceDurationLastFrameString", "Source_Duration_LastFrame/String", String},
			{"SourceDurationLastFrameString1", "Source_Duration_LastFrame/String1", String},
			{"SourceDurationLastFrameString2", "Source_Duration_LastFrame/String2", String},
			{"SourceDurationLastFrameString3", "Source_Duration_LastFrame/String3", String},
			{"SourceDurationLastFrameString4", "Source_Duration_LastFrame/String4", String},
			{"SourceDurationLastFrameString5", "Source_Duration_LastFrame/String5", String},
			{"BitRateMode", "BitRate_Mode", String},
			{"BitRateModeString", "BitRate_Mode/String", String},
			{"BitRate", "BitRate", String},
			{"BitRateString", "BitRate/String", String},
			{"BitRateMinimum", "BitRate_Minimum", Int},
			{"BitRateMinimumString", "BitRate_Minimum/String", String},
			{"BitRateNominal", "BitRate_Nominal", Int},
			{"BitRateNominalString", "BitRate_Nominal/String", String},
			{"BitRateMaximum", "BitRate_Maximum", Int},
			{"BitRateMaximumString", "BitRate_Maximum/String", String},
			{"BitRateEncoded", "BitRate_Encoded", Int},
			{"BitRateEncodedString", "BitRate_Encoded/String", String},
			{"Channels", "Channels", Int},
			{"ChannelsString", "Channels/String", String},
			{"ChannelsOriginal", "Channels_Original", Int},
			{"ChannelsOriginalString", "Channels_Original/String", String},
			{"MatrixChannels", "Matrix_Channels", Int},
			{"MatrixChannelsString", "Matrix_Channels/String", String},
			{"ChannelPositions", "ChannelPositions", String},
			{"ChannelPositionsOriginal", "ChannelPositions_Original", String},
			{"ChannelPositionsString2", "ChannelPositions/String2", String},
			{"ChannelPositionsOriginalString2", "ChannelPositions_Original/String2", String},
			{"MatrixChannelPositions", "Matrix_ChannelPositions", String},
			{"MatrixChannelPositionsString2", "Matrix_ChannelPositions/String2", String},
			{"ChannelLayout", "ChannelLayout", String},
			{"ChannelLayoutOriginal", "ChannelLayout_Original", String},
			{"ChannelLayoutID", "ChannelLayoutID", String},
			{"SamplesPerFrame", "SamplesPerFrame", Int},
			{"SamplingRate", "SamplingRate", Int},
			{"SamplingRateString", "SamplingRate/String", String},
			{"SamplingCount", "SamplingCount", String},
			{"SourceSamplingCount", "Source_SamplingCount", Int},
			{"FrameRate", "FrameRate", String},
			{"FrameRateString", "FrameRate/String", String},
			{"FrameRateNum", "FrameRate_Num", Int},
			{"FrameRateDen", "FrameRate_Den", Int},
			{"FrameCount", "FrameCount", Int},
			{"SourceFrameCount", "Source_FrameCount", Int},
			{"BitDepth", "BitDepth", Int},
			{"BitDepthString", "BitDepth/String", String},
			{"BitDepthDetected", "BitDepth_Detected", Int},
			{"BitDepthDetectedString", "BitDepth_Detected/String", String},
			{"BitDepthStored", "BitDepth_Stored", Int},
			{"BitDepthStoredString", "BitDepth_Stored/String", String},
			{"Resolution", "Resolution", Int},
			{"CompressionMode", "Compression_Mode", String},
			{"CompressionModeString", "Compression_Mode/String", String},
			{"CompressionRatio", "Compression_Ratio", String},
			{"Delay", "Delay", Int},
			{"DelayString", "Delay/String", String},
			{"DelayString1", "Delay/String1", String},
			{"DelayString2", "Delay/String2", String},
			{"DelayString3", "Delay/String3", String},
			{"DelayString4", "Delay/String4", String},
			{"DelayString5", "Delay/String5", String},
			{"DelaySettings", "Delay_Settings", String},
			{"DelayDropFrame", "Delay_DropFrame", String},
			{"DelaySource", "Delay_Source", String},
			{"DelaySourceString", "Delay_Source/String", String},
			{"DelayOriginal", "Delay_Original", Int},
			{"DelayOriginalString", "Delay_Original/String", String},
			{"DelayOriginalString1", "Delay_Original/String1", String},
			{"DelayOriginalString2", "Delay_Original/String2", String},
			{"DelayOriginalString3", "Delay_Original/String3", String},
			{"DelayOriginalString4", "Delay_Original/String4", String},
			{"DelayOriginalString5", "Delay_Original/String5", String},
			{"DelayOriginalSettings", "Delay_Original_Settings", String},
			{"DelayOriginalDropFrame", "Delay_Original_DropFrame", String},
			{"DelayOriginalSource", "Delay_Original_Source", String},
			{"VideoDelay", "Video_Delay", Int},
			{"VideoDelayString", "Video_Delay/String", String},
			{"VideoDelayString1", "Video_Delay/String1", String},
			{"VideoDelayString2", "Video_Delay/String2", String},
			{"VideoDelayString3", "Video_Delay/String3", String},
			{"VideoDelayString4", "Video_Delay/String4", String},
			{"VideoDelayString5", "Video_Delay/String5", String},
			{"TimeCodeFirstFrame", "TimeCode_FirstFrame", String},
			{"TimeCodeLastFrame", "TimeCode_LastFrame", String},
			{"TimeCodeDropFrame", "TimeCode_DropFrame", String},
			{"TimeCodeSettings", "TimeCode_Settings", String},
			{"TimeCodeSource", "TimeCode_Source", String},
			{"ReplayGainGain", "ReplayGain_Gain", String},
			{"ReplayGainGainString", "ReplayGain_Gain/String", String},
			{"ReplayGainPeak", "ReplayGain_Peak", String},
			{"StreamSize", "StreamSize", String},
			{"StreamSizeString", "StreamSize/String", String},
			{"StreamSizeString1", "StreamSize/String1", String},
			{"StreamSizeString2", "StreamSize/String2", String},
			{"StreamSizeString3", "StreamSize/String3", String},
			{"StreamSizeString4", "StreamSize/String4", String},
			{"StreamSizeString5", "StreamSize/String5", String},
			{"StreamSizeProportion", "StreamSize_Proportion", String},
			{"StreamSizeDemuxed", "StreamSize_Demuxed", Int},
			{"StreamSizeDemuxedString", "StreamSize_Demuxed/String", String},
			{"StreamSizeDemuxedString1", "StreamSize_Demuxed/String1", String},
			{"StreamSizeDemuxedString2", "StreamSize_Demuxed/String2", String},
			{"StreamSizeDemuxedString3", "StreamSize_Demuxed/String3", String},
			{"StreamSizeDemuxedString4", "StreamSize_Demuxed/String4", String},
			{"StreamSizeDemuxedString5", "StreamSize_Demuxed/String5", String},
			{"SourceStreamSize", "Source_StreamSize", Int},
			{"SourceStreamSizeString", "Source_StreamSize/String", String},
			{"SourceStreamSizeString1", "Source_StreamSize/String1", String},
			{"SourceStreamSizeString2", "Source_StreamSize/String2", String},
			{"SourceStreamSizeString3", "Source_StreamSize/String3", String},
			{"SourceStreamSizeString4", "Source_StreamSize/String4", String},
			{"SourceStreamSizeString5", "Source_StreamSize/String5", String},
			{"SourceStreamSizeProportion", "Source_StreamSize_Proportion", String},
			{"StreamSizeEncoded", "StreamSize_Encoded", Int},
			{"StreamSizeEncodedString", "StreamSize_Encoded/String", String},
			{"StreamSizeEncodedString1", "StreamSize_Encoded/String1", String},
			{"StreamSizeEncodedString2", "StreamSize_Encoded/String2", String},
			{"StreamSizeEncodedString3", "StreamSize_Encoded/String3", String},
			{"StreamSizeEncodedString4", "StreamSize_Encoded/String4", String},
			{"StreamSizeEncodedString5", "StreamSize_Encoded/String5", String},
			{"StreamSizeEncodedProportion", "StreamSize_Encoded_Proportion", String},
			{"SourceStreamSizeEncoded", "Source_StreamSize_Encoded", Int},
			{"SourceStreamSizeEncodedString", "Source_StreamSize_Encoded/String", String},
			{"SourceStreamSizeEncodedString1", "Source_StreamSize_Encoded/String1", String},
			{"SourceStreamSizeEncodedString2", "Source_StreamSize_Encoded/String2", String},
			{"SourceStreamSizeEncodedString3", "Source_StreamSize_Encoded/String3", String},
			{"SourceStreamSizeEncodedString4", "Source_StreamSize_Encoded/String4", String},
			{"SourceStreamSizeEncodedString5", "Source_StreamSize_Encoded/String5", String},
			{"SourceStreamSizeEncodedProportion", "Source_StreamSize_Encoded_Proportion", String},
			{"Alignment", "Alignment", String},
			{"AlignmentString", "Alignment/String", String},
			{"InterleaveVideoFrames", "Interleave_VideoFrames", Int},
			{"InterleaveDuration", "Interleave_Duration", Int},
			{"InterleaveDurationString", "Interleave_Duration/String", String},
			{"InterleavePreload", "Interleave_Preload", Int},
			{"InterleavePreloadString", "Interleave_Preload/String", String},
			{"Title", "Title", String},
			{"EncodedApplication", "Encoded_Application", String},
			{"EncodedApplicationString", "Encoded_Application/String", String},
			{"EncodedApplicationCompanyName", "Encoded_Application_CompanyName", String},
			{"EncodedApplicationName", "Encoded_Application_Name", String},
			{"EncodedApplicationVersion", "Encoded_Application_Version", String},
			{"EncodedApplicationURL", "Encoded_Application_Url", String},
			{"EncodedLibrary", "Encoded_Library", String},
			{"EncodedLibraryString", "Encoded_Library/String", String},
			{"EncodedLibraryCompanyName", "Encoded_Library_CompanyName", String},
			{"EncodedLibraryName", "Encoded_Library_Name", String},
			{"EncodedLibraryVersion", "Encoded_Library_Version", String},
			{"EncodedLibraryDate", "Encoded_Library_Date", String},
			{"EncodedLibrarySettings", "Encoded_Library_Settings", String},
			{"EncodedOperatingSystem", "Encoded_OperatingSystem", String},
			{"Language", "Language", String},
			{"LanguageString", "Language/String", String},
			{"LanguageString1", "Language/String1", String},
			{"LanguageString2", "Language/String2", String},
			{"LanguageString3", "Language/String3", String},
			{"LanguageString4", "Language/String4", String},
			{"LanguageMore", "Language_More", String},
			{"ServiceKind", "ServiceKind", String},
			{"ServiceKindString", "ServiceKind/String", String},
			{"Disabled", "Disabled", String},
			{"DisabledString", "Disabled/String", String},
			{"Default", "Default", String},
			{"DefaultString", "Default/String", String},
			{"Forced", "Forced", String},
			{"ForcedString", "Forced/String", String},
			{"AlternateGroup", "AlternateGroup", String},
			{"AlternateGroupString", "AlternateGroup/String", String},
			{"EncodedDate", "Encoded_Date", Time},
			{"TaggedDate", "Tagged_Date", Time},
			{"Encryption", "Encryption", String},
		},
	},
	{
		Kind:   "StreamText",
		Type:   "TextStream",
		Fields: []Field{
			{"StreamID", "ID", String},
			{"Format", "Format", String},
			{"FormatSettingsWrapping", "Format_Settings_Wrapping", String},
			{"CodecID", "CodecID", String},
			{"CodecInfo", "CodecID/Info", String},
			{"InternetMediaType", "InternetMediaType", String},
			{"MuxingMode", "MuxingMode", String},
			{"MuxingModeMoreInfo", "MuxingMode_MoreInfo", String},
			{"Duration", "Duration", Duration},
			{"DurationString", "Duration/String", String},
			{"DurationString1", "Duration/String1", String},
			{"DurationString2", "Duration/String2", String},
			{"DurationString3", "Duration/String3", String},
			{"DurationString4", "Duration/String4", String},
			{"DurationString5", "Duration/String5", String},
			{"DurationStart2End", "Duration_Start2End", Int},
			{"DurationStart2EndString", "Duration_Start2End/String", String},
			{"DurationStart2EndString1", "Duration_Start2End/String1", String},
			{"DurationStart2EndString2", "Duration_Start2End/String2", String},
			{"DurationStart2EndString3", "Duration_Start2End/String3", String},
			{"DurationStart2EndString4", "Duration_Start2End/String4", String},
			{"DurationStart2EndString5", "Duration_Start2End/String5", String},
			{"DurationStartCommand", "Duration_Start_Command", Int},
			{"DurationStartCommandString", "Duration_Start_Command/String", String},
			{"DurationStartCommandString1", "Duration_Start_Command/String1", String},
			{"DurationStartCommandString2", "Duration_Start_Command/String2", String},
			{"DurationStartCommandString3", "Duration_Start_Command/String3", String},
			{"DurationStartCommandString4", "Duration_Start_Command/String4", String},
			{"DurationStartCommandString5", "Duration_Start_Command/String5", String},
			{"DurationStart", "Duration_Start", Int},
			{"DurationStartString", "Duration_Start/String", String},
			{"DurationStartString1", "Duration_Start/String1", String},
			{"DurationStartString2", "Duration_Start/String2", String},
			{"DurationStartString3", "Duration_Start/String3", String},
			{"DurationStartString4", "Duration_Start/String4", String},
			{"DurationStartString5", "Duration_Start/String5", String},
			{"DurationEnd", "Duration_End", Int},
			{"DurationEndString", "Duration_End/String", String},
			{"DurationEndString1", "Duration_End/String1", String},
			{"DurationEndString2", "Duration_End/String2", String},
			{"DurationEndString3", "Duration_End/String3", String},
			{"DurationEndString4", "Duration_End/String4", String},
			{"DurationEndString5", "Duration_End/String5", String},
			{"DurationEndCommand", "Duration_End_Command", Int},
			{"DurationEndCommandString", "Duration_End_Command/String", String},
			{"DurationEndCommandString1", "Duration_End_Command/String1", String},
			{"DurationEndCommandString2", "Duration_End_Command/String2", String},
			{"DurationEndCommandString3", "Duration_End_Command/String3", String},
			{"DurationEndCommandString4", "Duration_End_Command/String4", String},
			{"DurationEndCommandString5", "Duration_End_Command/String5", String},
			{"DurationFirstFrame", "Duration_FirstFrame", Int},
			{"DurationFirstFrameString", "Duration_FirstFrame/String", String},
			{"DurationFirstFrameString1", "Duration_FirstFrame/String1", String},
			{"DurationFirstFrameString2", "Duration_FirstFrame/String2", String},
			{"DurationFirstFrameString3", "Duration_FirstFrame/String3", String},
			{"DurationFirstFrameString4", "Duration_FirstFrame/String4", String},
			{"DurationFirstFrameString5", "Duration_FirstFrame/String5", String},
			{"DurationLastFrame", "Duration_LastFrame", Int},
			{"DurationLastFrameString", "Duration_LastFrame/String", String},
			{"DurationLastFrameString1", "Duration_LastFrame/String1", String},
			{"DurationLastFrameString2", "Duration_LastFrame/String2", String},
			{"DurationLastFrameString3", "Duration_LastFrame/String3", String},
			{"DurationLastFrameString4", "Duration_LastFrame/String4", String},
			{"DurationLastFrameString5", "Duration_LastFrame/String5", String},
			{"DurationBase", "Duration_Base", String},
			{"SourceDuration", "Source_Duration", Int},
			{"SourceDurationString", "Source_Duration/String", String},
			{"SourceDurationString1", "Source_Duration/String1", String},
			{"SourceDurationString2", "Source_Duration/String2", String},
			{"SourceDurationString3", "Source_Duration/String3", String},
			{"SourceDurationString4", "Source_Duration/String4", String},
			{"SourceDurationString5", "Source_Duration/String5", String},
			{"SourceDurationFirstFrame", "Source_Duration_FirstFrame", Int},
			{"SourceDurationFirstFrameString", "Source_Duration_FirstFrame/String", String},
			{"SourceDurationFirstFrameString1", "Source_Duration_FirstFrame/String1", String},
			{"SourceDurationFirstFrameString2", "Source_Duration_FirstFrame/String2", String},
			{"SourceDurationFirstFrameString3", "Source_Duration_FirstFrame/String3", String},
			{"SourceDurationFirstFrameString4", "Source_Duration_FirstFrame/String4", String},
			{"SourceDurationFirstFrameString5", "Source_Duration_FirstFrame/String5", String},
			{"SourceDurationLastFrame", "Source_Duration_LastFrame", Int},
			{"SourceDurationLastFrameString", "Source_Duration_LastFrame/String", String},
			{"SourceDurationLastFrameString1", "Source_Duration_LastFrame/String1", String},
			{"SourceDurationLastFrameString2", "Source_Duration_LastFrame/String2", String},
			{"SourceDurationLastFrameString3", "Source_Duration_LastFrame/String3", String},
			{"SourceDurationLastFrameString4", "Source_Duration_LastFrame/String4", String},
			{"SourceDurationLastFrameString5", "Source_Duration_LastFrame/String5", String},
			{"BitRateMode", "BitRate_Mode", String},
			{"BitRateModeString", "BitRate_Mode/String", String},
			{"BitRate", "BitRate", String},
			{"BitRateString", "BitRate/String", String},
			{"BitRateMinimum", "BitRate_Minimum", Int},
			{"BitRateMinimumString", "BitRate_Minimum/String", String},
			{"BitRateNominal", "BitRate_Nominal", Int},
			{"BitRateNominalString", "BitRate_Nominal/String", String},
			{"BitRateMaximum", "BitRate_Maximum", Int},
			{"BitRateMaximumString", "BitRate_Maximum/String", String},
			{"BitRateEncoded", "BitRate_Encoded", Int},
			{"BitRateEncodedString", "BitRate_Encoded/String", String},
			{"Width", "Width", Int},
			{"WidthString", "Width/String", String},
			{"Height", "Height", Int},
			{"HeightString", "Height/String", String},
			{"DisplayAspectRatio", "DisplayAspectRatio", String},
			{"DisplayAspectRatioString", "DisplayAspectRatio/String", String},
			{"DisplayAspectRatioOriginal", "DisplayAspectRatio_Original", String},
			{"DisplayAspectRatioOriginalString", "DisplayAspectRatio_Original/String", String},
			{"FrameRateMode", "FrameRate_Mode", String},
			{"FrameRateModeString", "FrameRate_Mode/String", String},
			{"FrameRateModeOriginal", "FrameRate_Mode_Original", String},
			{"FrameRateModeOriginalString", "FrameRate_Mode_Original/String", String},
			{"FrameRate", "FrameRate", String},
			{"FrameRateString", "FrameRate/String", String},
			{"FrameRateNum", "FrameRate_Num", Int},
			{"FrameRateDen", "FrameRate_Den", Int},
			{"FrameRateMinimum", "FrameRate_Minimum", String},
			{"FrameRateMinimumString", "FrameRate_Minimum/String", String},
			{"FrameRateNominal", "FrameRate_Nominal", String},
			{"FrameRateNominalString", "FrameRate_Nominal/String", String},
			{"FrameRateMaximum", "FrameRate_Maximum", String},
			{"FrameRateMaximumString", "FrameRate_Maximum/String", String},
			{"FrameRateOriginal", "FrameRate_Original", String},
			{"FrameRateOriginalString", "FrameRate_Original/String", String},
			{"FrameRateOriginalNum", "FrameRate_Original_Num", Int},
			{"FrameRateOriginalDen", "FrameRate_Original_Den", Int},
			{"FrameCount", "FrameCount", Int},
			{"ElementCount", "ElementCount", Int},
			{"SourceFrameCount", "Source_FrameCount", Int},
			{"ColorSpace", "ColorSpace", String},
			{"ChromaSubsampling", "ChromaSubsampling", String},
			{"BitDepth", "BitDepth", Int},
			{"BitDepthString", "BitDepth/String", String},
			{"CompressionMode", "Compression_Mode", String},
			{"CompressionModeString", "Compression_Mode/String", String},
			{"CompressionRatio", "Compression_Ratio", String},
			{"Title", "Title", String},
			{"EncodedApplication", "Encoded_Application", String},
			{"EncodedApplicationString", "Encoded_Application/String", String},
			{"EncodedApplicationCompanyName", "Encoded_Application_CompanyName", String},
			{"EncodedApplicationName", "Encoded_Application_Name", String},
			{"EncodedApplicationVersion", "Encoded_Application_Version", String},
			{"EncodedApplicationURL", "Encoded_Application_Url", String},
			{"EncodedLibrary", "Encoded_Library", String},
			{"EncodedLibraryString", "Encoded_Library/String", String},
			{"EncodedLibraryCompanyName", "Encoded_Library_CompanyName", String},
			{"EncodedLibraryName", "Encoded_Library_Name", String},
			{"EncodedLibraryVersion", "Encoded_Library_Version", String},
			{"EncodedLibraryDate", "Encoded_Library_Date", String},
			{"EncodedLibrarySettings", "Encoded_Library_Settings", String},
			{"EncodedOperatingSystem", "Encoded_OperatingSystem", String},
			{"Language", "Language", String},
			{"LanguageString", "Language/String", String},
			{"LanguageString1", "Language/String1", String},
			{"LanguageString2", "Language/String2", String},
			{"LanguageString3", "Language/String3", String},
			{"LanguageString4", "Language/String4", String},
			{"LanguageMore", "Language_More", String},
			{"ServiceKind", "ServiceKind", String},
			{"ServiceKindString", "ServiceKind/String", String},
			{"Disabled", "Disabled", String},
			{"DisabledString", "Disabled/String", String},
			{"Default", "Default", String},
			{"DefaultString", "Default/String", String},
			{"Forced", "Forced", String},
			{"ForcedString", "Forced/String", String},
			{"AlternateGroup", "AlternateGroup", String},
			{"AlternateGroupString", "AlternateGroup/String", String},
			{"Summary", "Summary", String},
			{"EncodedDate", "Encoded_Date", Time},
			{"TaggedDate", "Tagged_Date", Time},
			{"Encryption", "Encryption", String},
			{"EventsTotal", "Events_Total", String},
			{"EventsMinDuration", "Events_MinDuration", Int},
			{"EventsMinDurationString", "Events_MinDuration/String", String},
			{"EventsMinDurationString1", "Events_MinDuration/String1", String},
			{"EventsMinDurationString2", "Events_MinDuration/String2", String},
			{"EventsMinDurationString3", "Events_MinDuration/String3", String},
			{"EventsMinDurationString4", "Events_MinDuration/String4", String},
			{"EventsMinDurationString5", "Events_MinDuration/String5", String},
			{"EventsPopOn", "Events_PopOn", String},
			{"EventsRollUp", "Events_RollUp", String},
			{"EventsPaintOn", "Events_PaintOn", String},
			{"LinesCount", "Lines_Count", String},
			{"LinesMaxCountPerEvent", "Lines_MaxCountPerEvent", Int},
			{"LinesMaxCharacterCount", "Lines_MaxCharacterCount", Int},
			{"FirstDisplayDelayFrames", "FirstDisplay_Delay_Frames", String},
			{"FirstDisplayType", "FirstDisplay_Type", String},
		},
	},
	{
		Kind:   "StreamOther",
		Type:   "OtherStream",
		Fields: []Field{
			{"StreamID", "ID", String},
			{"OtherType", "Type", String},
			{"FormatSettingsWrapping", "Format_Settings_Wrapping", String},
			{"MuxingMode", "MuxingMode", String},
			{"MuxingModeMoreInfo", "MuxingMode_MoreInfo", String},
			{"Duration", "Duration", Duration},
			{"DurationString", "Duration/String", String},
			{"DurationString1", "Duration/String1", String},
			{"DurationString2", "Duration/String2", String},
			{"DurationString3", "Duration/String3", String},
			{"DurationString4", "Duration/String4", String},
			{"DurationString5", "Duration/String5", String},
			{"DurationStart", "Duration_Start", Int},
			{"DurationEnd", "Duration_End", Int},
			{"SourceDuration", "Source_Duration", Int},
			{"SourceDurationString", "Source_Duration/String", String},
			{"SourceDurationString1", "Source_Duration/String1", String},
			{"SourceDurationString2", "Source_Duration/String2", String},
			{"SourceDurationString3", "Source_Duration/String3", String},
			{"SourceDurationString4", "Source_Duration/String4", String},
			{"SourceDurationString5", "Source_Duration/String5", String},
			{"SourceDurationFirstFrame", "Source_Duration_FirstFrame", Int},
			{"SourceDurationFirstFrameString", "Source_Duration_FirstFrame/String", String},
			{"SourceDurationFirstFrameString1", "Source_Duration_FirstFrame/String1", String},
			{"SourceDurationFirstFrameString2", "Source_Duration_FirstFrame/String2", String},
			{"SourceDurationFirstFrameString3", "Source_Duration_FirstFrame/String3", String},
			{"SourceDurationFirstFrameString4", "Source_Duration_FirstFrame/String4", String},
			{"SourceDurationFirstFrameString5", "Source_Duration_FirstFrame/String5", String},
			{"SourceDurationLastFrame", "Source_Duration_LastFrame", Int},
			{"SourceDurationLastFrameString", "Source_Duration_LastFrame/String", String},
			{"SourceDurationLastFrameString1", "Source_Duration_LastFrame/String1", String},
			{"SourceDurationLastFrameString2", "Source_Duration_LastFrame/String2", String},
			{"SourceDurationLastFrameString3", "Source_Duration_LastFrame/String3", String},
			{"SourceDurationLastFrameString4", "Source_Duration_LastFrame/String4", String},
			{"SourceDurationLastFrameString5", "Source_Duration_LastFrame/String5", String},
			{"BitRateMode", "BitRate_Mode", String},
			{"BitRateModeString", "BitRate_Mode/String", String},
			{"BitRate", "BitRate", String},
			{"BitRateString", "BitRate/String", String},
			{"BitRateMinimum", "BitRate_Minimum", Int},
			{"BitRateMinimumString", "BitRate_Minimum/String", String},
			{"BitRateNominal", "BitRate_Nominal", Int},
			{"BitRateNominalString", "BitRate_Nominal/String", String},
			{"BitRateMaximum", "BitRate_Maximum", Int},
			{"BitRateMaximumString", "BitRate_Maximum/String", String},
			{"BitRateEncoded", "BitRate_Encoded", Int},
			{"BitRateEncodedString", "BitRate_Encoded/String", String},
			{"FrameRate", "FrameRate", String},
			{"FrameRateString", "FrameRate/String", String},
			{"FrameRateNum", "FrameRate_Num", Int},
			{"FrameRateDen", "FrameRate_Den", Int},
			{"FrameCount", "FrameCount", Int},
			{"SourceFrameCount", "Source_FrameCount", Int},
			{"Timecode", "TimeCode_FirstFrame", String},
			{"TimeCodeLastFrame", "TimeCode_LastFrame", String},
			{"TimeCodeDropFrame", "TimeCode_DropFrame", String},
			{"TimeCodeSettings", "TimeCode_Settings", String},
			{"TimeCodeStripped", "TimeCode_Stripped", String},
			{"TimeCodeStrippedString", "TimeCode_Stripped/String", String},
			{"TimeCodeSource", "TimeCode_Source", String},
			{"StreamSize", "StreamSize", Int},
			{"StreamSizeString", "StreamSize/String", String},
			{"StreamSizeString1", "StreamSize/String1", String},
			{"StreamSizeString2", "StreamSize/String2", String},
			{"StreamSizeString3", "StreamSize/String3", String},
			{"StreamSizeString4", "StreamSize/String4", String},
			{"StreamSizeString5", "StreamSize/String5", String},
			{"StreamSizeProportion", "StreamSize_Proportion", String},
			{"StreamSizeDemuxed", "StreamSize_Demuxed", Int},
			{"StreamSizeDemuxedString", "StreamSize_Demuxed/String", String},
			{"StreamSizeDemuxedString1", "StreamSize_Demuxed/String1", String},
			{"StreamSizeDemuxedString2", "StreamSize_Demuxed/String2", String},
			{"StreamSizeDemuxedString3", "StreamSize_Demuxed/String3", String},
			{"StreamSizeDemuxedString4", "StreamSize_Demuxed/String4", String},
			{"StreamSizeDemuxedString5", "StreamSize_Demuxed/String5", String},
			{"SourceStreamSize", "Source_StreamSize", Int},
			{"SourceStreamSizeString", "Source_StreamSize/String", String},
			{"SourceStreamSizeString1", "Source_StreamSize/String1", String},
			{"SourceStreamSizeString2", "Source_StreamSize/String2", String},
			{"SourceStreamSizeString3", "Source_StreamSize/String3", String},
			{"SourceStreamSizeString4", "Source_StreamSize/String4", String},
			{"SourceStreamSizeString5", "Source_StreamSize/String5", String},
			{"SourceStreamSizeProportion", "Source_StreamSize_Proportion", String},
			{"StreamSizeEncoded", "StreamSize_Encoded", Int},
			{"StreamSizeEncodedString", "StreamSize_Encoded/String", String},
			{"StreamSizeEncodedString1", "StreamSize_Encoded/String1", String},
			{"StreamSizeEncodedString2", "StreamSize_Encoded/String2", String},
			{"StreamSizeEncodedString3", "StreamSize_Encoded/String3", String},
			{"StreamSizeEncodedString4", "StreamSize_Encoded/String4", String},
			{"StreamSizeEncodedString5", "StreamSize_Encoded/String5", String},
			{"StreamSizeEncodedProportion", "StreamSize_Encoded_Proportion", String},
			{"SourceStreamSizeEncoded", "Source_StreamSize_Encoded", Int},
			{"SourceStreamSizeEncodedString", "Source_StreamSize_Encoded/String", String},
			{"SourceStreamSizeEncodedString1", "Source_StreamSize_Encoded/String1", String},
			{"SourceStreamSizeEncodedString2", "Source_StreamSize_Encoded/String2", String},
			{"SourceStreamSizeEncodedString3", "Source_StreamSize_Encoded/String3", String},
			{"SourceStreamSizeEncodedString4", "Source_StreamSize_Encoded/String4", String},
			{"SourceStreamSizeEncodedString5", "Source_StreamSize_Encoded/String5", String},
			{"SourceStreamSizeEncodedProportion", "Source_StreamSize_Encoded_Proportion", String},
			{"Title", "Title", String},
			{"Language", "Language", String},
			{"LanguageString", "Language/String", String},
			{"LanguageString1", "Language/String1", String},
			{"LanguageString2", "Language/String2", String},
			{"LanguageString3", "Language/String3", String},
			{"LanguageString4", "Language/String4", String},
			{"LanguageMore", "Language_More", String},
			{"ServiceKind", "ServiceKind", String},
			{"ServiceKindString", "ServiceKind/String", String},
			{"Disabled", "Disabled", String},
			{"DisabledString", "Disabled/String", String},
			{"Default", "Default", String},
			{"DefaultString", "Default/String", String},
			{"Forced", "Forced", String},
			{"ForcedString", "Forced/String", String},
			{"AlternateGroup", "AlternateGroup", String},
			{"AlternateGroupString", "AlternateGroup/String", String},
		},
	},
	{
		Kind:   "StreamImage",
		Type:   "ImageStream",
		Fields: []Field{
			{"Title", "Title", String},
			{"HDRFormat", "HDR_Format", String},
			{"HDRFormatString", "HDR_Format/String", String},
			{"HDRFormatCommercial", "HDR_Format_Commercial", String},
			{"HDRFormatVersion", "HDR_Format_Version", String},
			{"HDRFormatProfile", "HDR_Format_Profile", String},
			{"HDRFormatLevel", "HDR_Format_Level", String},
			{"HDRFormatSettings", "HDR_Format_Settings", String},
			{"HDRFormatCompatibility", "HDR_Format_Compatibility", String},
			{"FormatSettingsEndianness", "Format_Settings_Endianness", String},
			{"FormatSettingsPacking", "Format_Settings_Packing", String},
			{"FormatSettingsWrapping", "Format_Settings_Wrapping", String},
			{"InternetMediaType", "InternetMediaType", String},
			{"Width", "Width", Int},
			{"WidthString", "Width/String", String},
			{"WidthOffset", "Width_Offset", Int},
			{"WidthOffsetString", "Width_Offset/String", String},
			{"WidthOriginal", "Width_Original", Int},
			{"WidthOriginalString", "Width_Original/String", String},
			{"Height", "Height", Int},
			{"HeightString", "Height/String", String},
			{"HeightOffset", "Height_Offset", Int},
			{"HeightOffsetString", "Height_Offset/String", String},
			{"HeightOriginal", "Height_Original", Int},
			{"HeightOriginalString", "Height_Original/String", String},
			{"PixelAspectRatio", "PixelAspectRatio", String},
			{"PixelAspectRatioString", "PixelAspectRatio/String", String},
			{"PixelAspectRatioOriginal", "PixelAspectRatio_Original", String},
			{"PixelAspectRatioOriginalString", "PixelAspectRatio_Original/String", String},
			{"DisplayAspectRatio", "DisplayAspectRatio", String},
			{"DisplayAspectRatioString", "DisplayAspectRatio/String", String},
			{"DisplayAspectRatioOriginal", "DisplayAspectRatio_Original", String},
			{"DisplayAspectRatioOriginalString", "DisplayAspectRatio_Original/String", String},
			{"ActiveWidth", "Active_Width", Int},
			{"ActiveWidthString", "Active_Width/String", String},
			{"ActiveHeight", "Active_Height", Int},
			{"ActiveHeightString", "Active_Height/String", String},
			{"ActiveDisplayAspectRatio", "Active_DisplayAspectRatio", String},
			{"ActiveDisplayAspectRatioString", "Active_DisplayAspectRatio/String", String},
			{"ColorSpace", "ColorSpace", String},
			{"ChromaSubsampling", "ChromaSubsampling", String},
			{"BitDepth", "BitDepth", Int},
			{"BitDepthString", "BitDepth/String", String},
			{"CompressionMode", "Compression_Mode", String},
			{"CompressionModeString", "Compression_Mode/String", String},
			{"CompressionRatio", "Compression_Ratio", String},
			{"StreamSize", "StreamSize", Int},
			{"StreamSizeString", "StreamSize/String", String},
			{"StreamSizeString1", "StreamSize/String1", String},
			{"StreamSizeString2", "StreamSize/String2", String},
			{"StreamSizeString3", "StreamSize/String3", String},
			{"StreamSizeString4", "StreamSize/String4", String},
			{"StreamSizeString5", "StreamSize/String5", String},
			{"StreamSizeProportion", "StreamSize_Proportion", String},
			{"StreamSizeDemuxed", "StreamSize_Demuxed", Int},
			{"StreamSizeDemuxedString", "StreamSize_Demuxed/String", String},
			{"StreamSizeDemuxedString1", "StreamSize_Demuxed/String1", String},
			{"StreamSizeDemuxedString2", "StreamSize_Demuxed/String2", String},
			{"StreamSizeDemuxedString3", "StreamSize_Demuxed/String3", String},
			{"StreamSizeDemuxedString4", "StreamSize_Demuxed/String4", String},
			{"StreamSizeDemuxedString5", "StreamSize_Demuxed/String5", String},
			{"EncodedLibrary", "Encoded_Library", String},
			{"EncodedLibraryString", "Encoded_Library/String", String},
			{"EncodedLibraryName", "Encoded_Library_Name", String},
			{"EncodedLibraryVersion", "Encoded_Library_Version", String},
			{"EncodedLibraryDate", "Encoded_Library_Date", String},
			{"EncodedLibrarySettings", "Encoded_Library_Settings", String},
			{"Language", "Language", String},
			{"LanguageString", "Language/String", String},
			{"LanguageString1", "Language/String1", String},
			{"LanguageString2", "Language/String2", String},
			{"LanguageString3", "Language/String3", String},
			{"LanguageString4", "Language/String4", String},
			{"LanguageMore", "Language_More", String},
			{"ServiceKind", "ServiceKind", String},
			{"ServiceKindString", "ServiceKind/String", String},
			{"Disabled", "Disabled", String},
			{"DisabledString", "Disabled/String", String},
			{"Default", "Default", String},
			{"DefaultString", "Default/String", String},
			{"Forced", "Forced", String},
			{"ForcedString", "Forced/String", String},
			{"AlternateGroup", "AlternateGroup", String},
			{"AlternateGroupString", "AlternateGroup/String", String},
			{"Summary", "Summary", String},
			{"EncodedDate", "Encoded_Date", Time},
			{"TaggedDate", "Tagged_Date", Time},
			{"Encryption", "Encryption", String},
			{"ColourDescriptionPresent", "colour_description_present", String},
			{"ColourDescriptionPresentSource", "colour_description_present_Source", String},
			{"ColourDescriptionPresentOriginal", "colour_description_present_Original", String},
			{"ColourDescriptionPresentOriginalSource", "colour_description_present_Original_Source", String},
			{"ColourRange", "colour_range", String},
			{"ColourRangeSource", "colour_range_Source", String},
			{"ColourRangeOriginal", "colour_range_Original", String},
			{"ColourRangeOriginalSource", "colour_range_Original_Source", String},
			{"ColourPrimaries", "colour_primaries", String},
			{"ColourPrimariesSource", "colour_primaries_Source", String},
			{"ColourPrimariesOriginal", "colour_primaries_Original", String},
			{"ColourPrimariesOriginalSource", "colour_primaries_Original_Source", String},
			{"TransferCharacteristics", "transfer_characteristics", String},
			{"TransferCharacteristicsSource", "transfer_characteristics_Source", String},
			{"TransferCharacteristicsOriginal", "transfer_characteristics_Original", String},
			{"TransferCharacteristicsOriginalSource", "transfer_characteristics_Original_Source", String},
			{"MatrixCoefficients", "matrix_coefficients", String},
			{"MatrixCoefficientsSource", "matrix_coefficients_Source", String},
			{"MatrixCoefficientsOriginal", "matrix_coefficients_Original", String},
			{"MatrixCoefficientsOriginalSource", "matrix_coefficients_Original_Source", String},
			{"MasteringDisplayColorPrimaries", "MasteringDisplay_ColorPrimaries", String},
			{"MasteringDisplayColorPrimariesSource", "MasteringDisplay_ColorPrimaries_Source", String},
			{"MasteringDisplayColorPrimariesOriginal", "MasteringDisplay_ColorPrimaries_Original", String},
			{"MasteringDisplayColorPrimariesOriginalSource", "MasteringDisplay_ColorPrimaries_Original_Source", String},
			{"MasteringDisplayLuminance", "MasteringDisplay_Luminance", String},
			{"MasteringDisplayLuminanceSource", "MasteringDisplay_Luminance_Source", String},
			{"MasteringDisplayLuminanceOriginal", "MasteringDisplay_Luminance_Original", String},
			{"MasteringDisplayLuminanceOriginalSource", "MasteringDisplay_Luminance_Original_Source", String},
			{"MaxCLL", "MaxCLL", String},
			{"MaxCLLSource", "MaxCLL_Source", String},
			{"MaxCLLOriginal", "MaxCLL_Original", String},
			{"MaxCLLOriginalSource", "MaxCLL_Original_Source", String},
			{"MaxFALL", "MaxFALL", String},
			{"MaxFALLSource", "MaxFALL_Source", String},
			{"MaxFALLOriginal", "MaxFALL_Original", String},
			{"MaxFALLOriginalSource", "MaxFALL_Original_Source", String},
			{"Resolution", "Resolution", String},
			{"Format", "Format", String},
		},
	},
	{
		Kind:   "StreamMenu",
		Type:   "MenuStream",
		Fields: []Field{
			{"StreamID", "ID", String},
			{"Duration", "Duration", Duration},
			{"DurationString", "Duration/String", String},
			{"DurationString1", "Duration/String1", String},
			{"DurationString2", "Duration/String2", String},
			{"DurationString3", "Duration/String3", String},
			{"DurationString4", "Duration/String4", String},
			{"DurationString5", "Duration/String5", String},
			{"DurationStart", "Duration_Start", Int},
			{"DurationEnd", "Duration_End", Int},
			{"Delay", "Delay", Int},
			{"DelayString", "Delay/String", String},
			{"DelayString1", "Delay/String1", String},
			{"DelayString2", "Delay/String2", String},
			{"DelayString3", "Delay/String3", String},
			{"DelayString4", "Delay/String4", String},
			{"DelayString5", "Delay/String5", String},
			{"DelaySettings", "Delay_Settings", String},
			{"DelayDropFrame", "Delay_DropFrame", String},
			{"DelaySource", "Delay_Source", String},
			{"FrameRateMode", "FrameRate_Mode", String},
			{"FrameRateModeString", "FrameRate_Mode/String", String},
			{"FrameRate", "FrameRate", String},
			{"FrameRateString", "FrameRate/String", String},
			{"FrameRateNum", "FrameRate_Num", Int},
			{"FrameRateDen", "FrameRate_Den", Int},
			{"FrameCount", "FrameCount", Int},
			{"ListStreamKind", "List_StreamKind", String},
			{"ListStreamPos", "List_StreamPos", String},
			{"List", "List", String},
			{"ListString", "List/String", String},
			{"Title", "Title", String},
			{"Language", "Language", String},
			{"LanguageString", "Language/String", String},
			{"LanguageString1", "Language/String1", String},
			{"LanguageString2", "Language/String2", String},
			{"LanguageString3", "Language/String3", String},
			{"LanguageString4", "Language/String4", String},
			{"LanguageMore", "Language_More", String},
			{"ServiceKind", "ServiceKind", String},
			{"ServiceKindString", "ServiceKind/String", String},
			{"ServiceName", "ServiceName", String},
			{"ServiceChannel", "ServiceChannel", String},
			{"ServiceURL", "Service_Url", String},
			{"ServiceProvider", "ServiceProvider", String},
			{"ServiceProviderURL", "ServiceProvider_Url", String},
			{"ServiceType", "ServiceType", String},
			{"NetworkName", "NetworkName", String},
			{"OriginalNetworkName", "Original_NetworkName", String},
			{"Countries", "Countries", String},
			{"TimeZones", "TimeZones", String},
			{"LawRating", "LawRating", String},
			{"LawRatingReason", "LawRating_Reason", String},
			{"Disabled", "Disabled", String},
			{"DisabledString", "Disabled/String", String},
			{"Default", "Default", String},
			{"DefaultString", "Default/String", String},
			{"Forced", "Forced", String},
			{"ForcedString", "Forced/String", String},
			{"AlternateGroup", "AlternateGroup", String},
			{"AlternateGroupString", "AlternateGroup/String", String},
			{"ChaptersPosBegin", "Chapters_Pos_Begin", Int},
			{"ChaptersPosEnd", "Chapters_Pos_End", Int},
			{"EncodedDate", "Encoded_Date", Time},
			{"TaggedDate", "Tagged_Date", Time},
		},
	},
}
