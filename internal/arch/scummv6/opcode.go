package scummv6

// param defines how an immediate operand is encoded in the bytecode.
type param int

const (
	paramByte    param = iota // unsigned byte
	paramWord                 // unsigned little endian word
	paramByteVar              // variable number as byte
	paramWordVar              // variable number as little endian word
	paramJump                 // signed little endian word relative to the next instruction
	paramString               // zero terminated string with escape codes
)

// opcode describes a SCUMM v6 opcode.
type opcode struct {
	name   string
	params []param

	// sub-op opcodes read a sub-op byte followed by subParams and the sub-op params
	subOps    map[byte]subOp
	subParams []param
}

type subOp struct {
	name   string
	params []param
}

var (
	byteParam    = []param{paramByte}
	wordParam    = []param{paramWord}
	byteVarParam = []param{paramByteVar}
	wordVarParam = []param{paramWordVar}
	jumpParam    = []param{paramJump}
	stringParam  = []param{paramString}
)

var cursorSubOps = map[byte]subOp{
	0x90: {name: "cursorOn"},
	0x91: {name: "cursorOff"},
	0x92: {name: "userputOn"},
	0x93: {name: "userputOff"},
	0x94: {name: "cursorSoftOn"},
	0x95: {name: "cursorSoftOff"},
	0x96: {name: "userputSoftOn"},
	0x97: {name: "userputSoftOff"},
	0x99: {name: "setCursorImg"},
	0x9a: {name: "setCursorHotspot"},
	0x9c: {name: "initCharset"},
	0x9d: {name: "charsetColors"},
	0xd6: {name: "makeCursorColorTransparent"},
}

var resourceSubOps = map[byte]subOp{
	0x64: {name: "loadScript"},
	0x65: {name: "loadSound"},
	0x66: {name: "loadCostume"},
	0x67: {name: "loadRoom"},
	0x68: {name: "nukeScript"},
	0x69: {name: "nukeSound"},
	0x6a: {name: "nukeCostume"},
	0x6b: {name: "nukeRoom"},
	0x6c: {name: "lockScript"},
	0x6d: {name: "lockSound"},
	0x6e: {name: "lockCostume"},
	0x6f: {name: "lockRoom"},
	0x70: {name: "unlockScript"},
	0x71: {name: "unlockSound"},
	0x72: {name: "unlockCostume"},
	0x73: {name: "unlockRoom"},
	0x75: {name: "loadCharset"},
	0x76: {name: "nukeCharset"},
	0x77: {name: "loadFlObject"},
}

var roomSubOps = map[byte]subOp{
	0xac: {name: "roomScroll"},
	0xae: {name: "setScreen"},
	0xaf: {name: "setPalColor"},
	0xb0: {name: "shakeOn"},
	0xb1: {name: "shakeOff"},
	0xb3: {name: "darkenPalette"},
	0xb4: {name: "saveLoadRoom"},
	0xb5: {name: "screenEffect"},
	0xb6: {name: "darkenPaletteRGB"},
	0xb7: {name: "setupShadowPalette"},
	0xba: {name: "palManipulate"},
	0xbb: {name: "colorCycleDelay"},
	0xd5: {name: "setPalette"},
}

var actorSubOps = map[byte]subOp{
	0x4c: {name: "setCostume"},
	0x4d: {name: "setWalkSpeed"},
	0x4e: {name: "setSound"},
	0x4f: {name: "setWalkFrame"},
	0x50: {name: "setTalkFrame"},
	0x51: {name: "setStandFrame"},
	0x53: {name: "init"},
	0x54: {name: "setElevation"},
	0x55: {name: "resetAnimation"},
	0x56: {name: "setPalette"},
	0x57: {name: "setTalkColor"},
	0x58: {name: "setName", params: stringParam},
	0x59: {name: "setInitFrame"},
	0x5b: {name: "setWidth"},
	0x5c: {name: "setScale"},
	0x5d: {name: "setNeverZClip"},
	0x5e: {name: "setAlwaysZClip"},
	0x5f: {name: "setIgnoreBoxes"},
	0x60: {name: "setFollowBoxes"},
	0x61: {name: "setAnimSpeed"},
	0x62: {name: "setShadowMode"},
	0x63: {name: "setTalkPos"},
	0xc5: {name: "setCurActor"},
	0xc6: {name: "setAnimVar"},
	0xd7: {name: "setIgnoreTurnsOn"},
	0xd8: {name: "setIgnoreTurnsOff"},
	0xd9: {name: "reinit"},
	0xe3: {name: "setLayer"},
	0xe4: {name: "setWalkScript"},
	0xe5: {name: "setStanding"},
	0xe6: {name: "setDirection"},
	0xe7: {name: "turnToDirection"},
	0xe9: {name: "freeze"},
	0xea: {name: "unfreeze"},
	0xeb: {name: "setTalkScript"},
}

var verbSubOps = map[byte]subOp{
	0x7c: {name: "setImage"},
	0x7d: {name: "setName", params: stringParam},
	0x7e: {name: "setColor"},
	0x7f: {name: "setHiColor"},
	0x80: {name: "setXY"},
	0x81: {name: "setOn"},
	0x82: {name: "setOff"},
	0x83: {name: "kill"},
	0x84: {name: "init"},
	0x85: {name: "setDimColor"},
	0x86: {name: "setDimmed"},
	0x87: {name: "setKey"},
	0x88: {name: "setCenter"},
	0x89: {name: "setToString"},
	0x8b: {name: "setToObject"},
	0x8c: {name: "setBkColor"},
	0xc4: {name: "setCurVerb"},
	0xff: {name: "redraw"},
}

var arraySubOps = map[byte]subOp{
	0xcd: {name: "assignString", params: stringParam},
	0xd0: {name: "assignIntList"},
	0xd4: {name: "assign2DimList"},
}

var saveRestoreVerbsSubOps = map[byte]subOp{
	0x8d: {name: "saveVerbs"},
	0x8e: {name: "restoreVerbs"},
	0x8f: {name: "deleteVerbs"},
}

var waitSubOps = map[byte]subOp{
	0xa8: {name: "waitForActor", params: jumpParam},
	0xa9: {name: "waitForMessage"},
	0xaa: {name: "waitForCamera"},
	0xab: {name: "waitForSentence"},
	0xe2: {name: "waitUntilActorDrawn", params: jumpParam},
	0xe8: {name: "waitUntilActorTurned", params: jumpParam},
}

var systemSubOps = map[byte]subOp{
	0x9e: {name: "restart"},
	0x9f: {name: "pause"},
	0xa0: {name: "quit"},
}

var printSubOps = map[byte]subOp{
	0x41: {name: "at"},
	0x42: {name: "color"},
	0x43: {name: "clipped"},
	0x45: {name: "center"},
	0x47: {name: "left"},
	0x48: {name: "overhead"},
	0x4a: {name: "mumble"},
	0x4b: {name: "textString", params: stringParam},
	0xfe: {name: "begin"},
	0xff: {name: "end"},
}

var dimSubOps = map[byte]subOp{
	0xc7: {name: "int"},
	0xc8: {name: "bit"},
	0xc9: {name: "nibble"},
	0xca: {name: "byte"},
	0xcb: {name: "string"},
	0xcc: {name: "nuke"},
}

// opcodes maps the first instruction byte to the opcode description.
var opcodes = map[byte]opcode{
	0x00: {name: "pushByte", params: byteParam},
	0x01: {name: "pushWord", params: wordParam},
	0x02: {name: "pushByteVar", params: byteVarParam},
	0x03: {name: "pushWordVar", params: wordVarParam},
	0x06: {name: "byteArrayRead", params: byteParam},
	0x07: {name: "wordArrayRead", params: wordParam},
	0x0a: {name: "byteArrayIndexedRead", params: byteParam},
	0x0b: {name: "wordArrayIndexedRead", params: wordParam},
	0x0c: {name: "dup"},
	0x0d: {name: "not"},
	0x0e: {name: "eq"},
	0x0f: {name: "neq"},
	0x10: {name: "gt"},
	0x11: {name: "lt"},
	0x12: {name: "le"},
	0x13: {name: "ge"},
	0x14: {name: "add"},
	0x15: {name: "sub"},
	0x16: {name: "mul"},
	0x17: {name: "div"},
	0x18: {name: "land"},
	0x19: {name: "lor"},
	0x1a: {name: "pop"},
	0x42: {name: "writeByteVar", params: byteVarParam},
	0x43: {name: "writeWordVar", params: wordVarParam},
	0x46: {name: "byteArrayWrite", params: byteParam},
	0x47: {name: "wordArrayWrite", params: wordParam},
	0x4a: {name: "byteArrayIndexedWrite", params: byteParam},
	0x4b: {name: "wordArrayIndexedWrite", params: wordParam},
	0x4e: {name: "byteVarInc", params: byteVarParam},
	0x4f: {name: "wordVarInc", params: wordVarParam},
	0x52: {name: "byteArrayInc", params: byteParam},
	0x53: {name: "wordArrayInc", params: wordParam},
	0x56: {name: "byteVarDec", params: byteVarParam},
	0x57: {name: "wordVarDec", params: wordVarParam},
	0x5a: {name: "byteArrayDec", params: byteParam},
	0x5b: {name: "wordArrayDec", params: wordParam},
	0x5c: {name: "jumpTrue", params: jumpParam},
	0x5d: {name: "jumpFalse", params: jumpParam},
	0x5e: {name: "startScript"},
	0x5f: {name: "startScriptQuick"},
	0x60: {name: "startObject"},
	0x61: {name: "drawObject"},
	0x62: {name: "drawObjectAt"},
	0x63: {name: "drawBlastObject"},
	0x64: {name: "setBlastObjectWindow"},
	0x65: {name: "stopObjectCodeA"},
	0x66: {name: "stopObjectCodeB"},
	0x67: {name: "endCutscene"},
	0x68: {name: "beginCutscene"},
	0x69: {name: "stopMusic"},
	0x6a: {name: "freezeUnfreeze"},
	0x6b: {name: "cursorCommand", subOps: cursorSubOps},
	0x6c: {name: "breakHere"},
	0x6d: {name: "ifClassOfIs"},
	0x6e: {name: "setClass"},
	0x6f: {name: "getState"},
	0x70: {name: "setState"},
	0x71: {name: "setOwner"},
	0x72: {name: "getOwner"},
	0x73: {name: "jump", params: jumpParam},
	0x74: {name: "startSound"},
	0x75: {name: "stopSound"},
	0x76: {name: "startMusic"},
	0x77: {name: "stopObjectScript"},
	0x78: {name: "panCameraTo"},
	0x79: {name: "actorFollowCamera"},
	0x7a: {name: "setCameraAt"},
	0x7b: {name: "loadRoom"},
	0x7c: {name: "stopScript"},
	0x7d: {name: "walkActorToObj"},
	0x7e: {name: "walkActorTo"},
	0x7f: {name: "putActorAtXY"},
	0x80: {name: "putActorAtObject"},
	0x81: {name: "faceActor"},
	0x82: {name: "animateActor"},
	0x83: {name: "doSentence"},
	0x84: {name: "pickupObject"},
	0x85: {name: "loadRoomWithEgo"},
	0x87: {name: "getRandomNumber"},
	0x88: {name: "getRandomNumberRange"},
	0x8a: {name: "getActorMoving"},
	0x8b: {name: "isScriptRunning"},
	0x8c: {name: "getActorRoom"},
	0x8d: {name: "getObjectX"},
	0x8e: {name: "getObjectY"},
	0x8f: {name: "getObjectOldDir"},
	0x90: {name: "getActorWalkBox"},
	0x91: {name: "getActorCostume"},
	0x92: {name: "findInventory"},
	0x93: {name: "getInventoryCount"},
	0x94: {name: "getVerbFromXY"},
	0x95: {name: "beginOverride"},
	0x96: {name: "endOverride"},
	0x97: {name: "setObjectName", params: stringParam},
	0x98: {name: "isSoundRunning"},
	0x99: {name: "setBoxFlags"},
	0x9a: {name: "createBoxMatrix"},
	0x9b: {name: "resourceRoutines", subOps: resourceSubOps},
	0x9c: {name: "roomOps", subOps: roomSubOps},
	0x9d: {name: "actorOps", subOps: actorSubOps},
	0x9e: {name: "verbOps", subOps: verbSubOps},
	0x9f: {name: "getActorFromXY"},
	0xa0: {name: "findObject"},
	0xa1: {name: "pseudoRoom"},
	0xa2: {name: "getActorElevation"},
	0xa3: {name: "getVerbEntrypoint"},
	0xa4: {name: "arrayOps", subOps: arraySubOps, subParams: wordParam},
	0xa5: {name: "saveRestoreVerbs", subOps: saveRestoreVerbsSubOps},
	0xa6: {name: "drawBox"},
	0xa7: {name: "pop"},
	0xa8: {name: "getActorWidth"},
	0xa9: {name: "wait", subOps: waitSubOps},
	0xaa: {name: "getActorScaleX"},
	0xab: {name: "getActorAnimCounter1"},
	0xac: {name: "soundKludge"},
	0xad: {name: "isAnyOf"},
	0xae: {name: "systemOps", subOps: systemSubOps},
	0xaf: {name: "isActorInBox"},
	0xb0: {name: "delay"},
	0xb1: {name: "delaySeconds"},
	0xb2: {name: "delayMinutes"},
	0xb3: {name: "stopSentence"},
	0xb4: {name: "printLine", subOps: printSubOps},
	0xb5: {name: "printText", subOps: printSubOps},
	0xb6: {name: "printDebug", subOps: printSubOps},
	0xb7: {name: "printSystem", subOps: printSubOps},
	0xb8: {name: "printActor", subOps: printSubOps},
	0xb9: {name: "printEgo", subOps: printSubOps},
	0xba: {name: "talkActor", params: stringParam},
	0xbb: {name: "talkEgo", params: stringParam},
	0xbc: {name: "dimArray", subOps: dimSubOps, subParams: wordParam},
	0xbd: {name: "dummy"},
	0xbe: {name: "startObjectQuick"},
	0xbf: {name: "startScriptQuick2"},
	0xc0: {name: "dim2dimArray", subOps: dimSubOps, subParams: wordParam},
	0xc4: {name: "abs"},
	0xc5: {name: "distObjectObject"},
	0xc6: {name: "distObjectPt"},
	0xc7: {name: "distPtPt"},
	0xc8: {name: "kernelGetFunctions"},
	0xc9: {name: "kernelSetFunctions"},
	0xca: {name: "delayFrames"},
	0xcb: {name: "pickOneOf"},
	0xcc: {name: "pickOneOfDefault"},
	0xcd: {name: "stampObject"},
	0xd0: {name: "getDateTime"},
	0xd1: {name: "stopTalking"},
	0xd2: {name: "getAnimateVariable"},
	0xd4: {name: "shuffle", params: wordParam},
	0xd5: {name: "jumpToScript"},
	0xd6: {name: "band"},
	0xd7: {name: "bor"},
	0xd8: {name: "isRoomScriptRunning"},
	0xdd: {name: "findAllObjects"},
	0xe1: {name: "getPixel"},
	0xe3: {name: "pickVarRandom", params: wordParam},
	0xe4: {name: "setBoxSet"},
	0xec: {name: "getActorLayer"},
	0xed: {name: "getObjectNewDir"},
}
