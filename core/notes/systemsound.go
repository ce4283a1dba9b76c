package notes

// SystemSoundID identifies a sound or vibration pattern in the platform's
// predefined system sound table.
type SystemSoundID uint32

// SystemSound is a predefined system sound available on every device.
type SystemSound SystemSoundID

// ID returns the raw system sound id.
func (s SystemSound) ID() SystemSoundID { return SystemSoundID(s) }

func (s SystemSound) String() string {
	if name, ok := systemSoundNames[s]; ok {
		return name
	}
	return "unknown"
}

const (
	SoundNewMail               SystemSound = 1000
	SoundMailSent              SystemSound = 1001
	SoundVoicemail             SystemSound = 1002
	SoundReceivedMessage       SystemSound = 1003
	SoundSentMessage           SystemSound = 1004
	SoundAlarm                 SystemSound = 1005
	SoundLowPower              SystemSound = 1006
	SoundSMSReceived1          SystemSound = 1007
	SoundSMSReceived2          SystemSound = 1008
	SoundSMSReceived3          SystemSound = 1009
	SoundSMSReceived4          SystemSound = 1010
	SoundSMSReceived7          SystemSound = 1012
	SoundSMSReceived5          SystemSound = 1013
	SoundSMSReceived6          SystemSound = 1014
	SoundTweetSent             SystemSound = 1016
	SoundAnticipate            SystemSound = 1020
	SoundBloom                 SystemSound = 1021
	SoundCalypso               SystemSound = 1022
	SoundChooChoo              SystemSound = 1023
	SoundDescent               SystemSound = 1024
	SoundFanfare               SystemSound = 1025
	SoundLadder                SystemSound = 1026
	SoundMinuet                SystemSound = 1027
	SoundNewsFlash             SystemSound = 1028
	SoundNoir                  SystemSound = 1029
	SoundSherwoodForest        SystemSound = 1030
	SoundSpell                 SystemSound = 1031
	SoundSuspense              SystemSound = 1032
	SoundTelegraph             SystemSound = 1033
	SoundTiptoes               SystemSound = 1034
	SoundTypewriters           SystemSound = 1035
	SoundUpdate                SystemSound = 1036
	SoundUSSD                  SystemSound = 1050
	SoundSIMToolkitCallDropped SystemSound = 1051
	SoundSIMToolkitGeneralBeep SystemSound = 1052
	SoundSIMToolkitNegativeAck SystemSound = 1053
	SoundSIMToolkitPositiveAck SystemSound = 1054
	SoundSIMToolkitSMS         SystemSound = 1055
	SoundTinkQuiet             SystemSound = 1057
	SoundCTBusy                SystemSound = 1070
	SoundCTCongestion          SystemSound = 1071
	SoundCTPathAck             SystemSound = 1072
	SoundCTError               SystemSound = 1073
	SoundCTCallWaiting         SystemSound = 1074
	SoundCTKeyTone2            SystemSound = 1075
	SoundLock                  SystemSound = 1100
	SoundUnlockFailed          SystemSound = 1102
	SoundTink                  SystemSound = 1103
	SoundTock                  SystemSound = 1104
	SoundBeepBeep              SystemSound = 1106
	SoundRingerChanged         SystemSound = 1107
	SoundPhotoShutter          SystemSound = 1108
	SoundShake                 SystemSound = 1109
	SoundJBLBegin              SystemSound = 1110
	SoundJBLConfirm            SystemSound = 1111
	SoundJBLCancel             SystemSound = 1112
	SoundBeginRecord           SystemSound = 1113
	SoundEndRecord             SystemSound = 1114
	SoundJBLAmbiguous          SystemSound = 1115
	SoundJBLNoMatch            SystemSound = 1116
	SoundBeginVideoRecord      SystemSound = 1117
	SoundEndVideoRecord        SystemSound = 1118
	SoundVCInvitationAccepted  SystemSound = 1150
	SoundVCRinging             SystemSound = 1151
	SoundVCEnded               SystemSound = 1152
	SoundCTCallWaiting2        SystemSound = 1153
	SoundVCRingingQuiet        SystemSound = 1154
	SoundTouchTone0            SystemSound = 1200
	SoundTouchTone1            SystemSound = 1201
	SoundTouchTone2            SystemSound = 1202
	SoundTouchTone3            SystemSound = 1203
	SoundTouchTone4            SystemSound = 1204
	SoundTouchTone5            SystemSound = 1205
	SoundTouchTone6            SystemSound = 1206
	SoundTouchTone7            SystemSound = 1207
	SoundTouchTone8            SystemSound = 1208
	SoundTouchTone9            SystemSound = 1209
	SoundTouchToneStar         SystemSound = 1210
	SoundTouchTonePound        SystemSound = 1211
	SoundHeadsetStartCall      SystemSound = 1254
	SoundHeadsetRedial         SystemSound = 1255
	SoundHeadsetAnswerCall     SystemSound = 1256
	SoundHeadsetEndCall        SystemSound = 1257
	SoundHeadsetWait           SystemSound = 1258
	SoundHeadsetTransitionEnd  SystemSound = 1259
	SoundTockQuiet             SystemSound = 1306
)

var systemSoundNames = map[SystemSound]string{
	SoundNewMail:               "newMail",
	SoundMailSent:              "mailSent",
	SoundVoicemail:             "voicemail",
	SoundReceivedMessage:       "receivedMessage",
	SoundSentMessage:           "sentMessage",
	SoundAlarm:                 "alarm",
	SoundLowPower:              "lowPower",
	SoundSMSReceived1:          "smsReceived1",
	SoundSMSReceived2:          "smsReceived2",
	SoundSMSReceived3:          "smsReceived3",
	SoundSMSReceived4:          "smsReceived4",
	SoundSMSReceived7:          "smsReceived7",
	SoundSMSReceived5:          "smsReceived5",
	SoundSMSReceived6:          "smsReceived6",
	SoundTweetSent:             "tweetSent",
	SoundAnticipate:            "anticipate",
	SoundBloom:                 "bloom",
	SoundCalypso:               "calypso",
	SoundChooChoo:              "chooChoo",
	SoundDescent:               "descent",
	SoundFanfare:               "fanfare",
	SoundLadder:                "ladder",
	SoundMinuet:                "minuet",
	SoundNewsFlash:             "newsFlash",
	SoundNoir:                  "noir",
	SoundSherwoodForest:        "sherwhoodForest",
	SoundSpell:                 "spell",
	SoundSuspense:              "suspense",
	SoundTelegraph:             "telegraph",
	SoundTiptoes:               "tiptoes",
	SoundTypewriters:           "typewriters",
	SoundUpdate:                "update",
	SoundUSSD:                  "ussd",
	SoundSIMToolkitCallDropped: "simToolkitCallDropped",
	SoundSIMToolkitGeneralBeep: "simToolkitGeneralBeep",
	SoundSIMToolkitNegativeAck: "simToolkitNegativeAck",
	SoundSIMToolkitPositiveAck: "simToolkitPositiveAck",
	SoundSIMToolkitSMS:         "simToolkitSms",
	SoundTinkQuiet:             "tinkQuiet",
	SoundCTBusy:                "ctBusy",
	SoundCTCongestion:          "ctCongestion",
	SoundCTPathAck:             "ctPathAck",
	SoundCTError:               "ctError",
	SoundCTCallWaiting:         "ctCallWaiting",
	SoundCTKeyTone2:            "ctKeyTone2",
	SoundLock:                  "lock",
	SoundUnlockFailed:          "unlockFailed",
	SoundTink:                  "tink",
	SoundTock:                  "tock",
	SoundBeepBeep:              "beepBeep",
	SoundRingerChanged:         "ringerChanged",
	SoundPhotoShutter:          "photoShutter",
	SoundShake:                 "shake",
	SoundJBLBegin:              "jblBegin",
	SoundJBLConfirm:            "jblConfirm",
	SoundJBLCancel:             "jblCancel",
	SoundBeginRecord:           "beginRecord",
	SoundEndRecord:             "endRecord",
	SoundJBLAmbiguous:          "jblAmbiguous",
	SoundJBLNoMatch:            "jblNoMatch",
	SoundBeginVideoRecord:      "beginVideoRecord",
	SoundEndVideoRecord:        "endVideoRecord",
	SoundVCInvitationAccepted:  "vcInvitationAccepted",
	SoundVCRinging:             "vcRinging",
	SoundVCEnded:               "vcEnded",
	SoundCTCallWaiting2:        "ctCallWaiting2",
	SoundVCRingingQuiet:        "vcRingingQuiet",
	SoundTouchTone0:            "touchTone0",
	SoundTouchTone1:            "touchTone1",
	SoundTouchTone2:            "touchTone2",
	SoundTouchTone3:            "touchTone3",
	SoundTouchTone4:            "touchTone4",
	SoundTouchTone5:            "touchTone5",
	SoundTouchTone6:            "touchTone6",
	SoundTouchTone7:            "touchTone7",
	SoundTouchTone8:            "touchTone8",
	SoundTouchTone9:            "touchTone9",
	SoundTouchToneStar:         "touchToneStar",
	SoundTouchTonePound:        "touchTonePound",
	SoundHeadsetStartCall:      "headsetStartCall",
	SoundHeadsetRedial:         "headsetRedial",
	SoundHeadsetAnswerCall:     "headsetAnswerCall",
	SoundHeadsetEndCall:        "headsetEndCall",
	SoundHeadsetWait:           "headsetWait",
	SoundHeadsetTransitionEnd:  "headsetTransitionEnd",
	SoundTockQuiet:             "tockQuiet",
}
