package op

// OpCodeTable is the full instruction catalog, indexed by opcode id.
// Arity is the number of uint16 parameter words, or Variadic.
// UnkNNN entries honor the calling convention only; their behavior
// is not implemented natively and falls back to the default handler.
var OpCodeTable = [...]OpCode{
	{0x000, "Null", 0},
	{0x001, "End", 0},
	{0x002, "Hold", 0},
	{0x003, "Destroy", 0},
	{0x004, "Return", 0},
	{0x005, "Call", 1},
	{0x006, "CallCommon", 1},
	{0x007, "Jump", 1},
	{0x008, "Branch", 2},
	{0x009, "BranchBit", 3},
	{0x00A, "BranchValue", 4},
	{0x00B, "BranchVariable", 4},
	{0x00C, "BranchPerformance", 2},
	{0x00D, "BranchVariation", 2},
	{0x00E, "BranchSum", 3},
	{0x00F, "Switch", 1},
	{0x010, "Case", 2},
	{0x011, "CaseValue", 3},
	{0x012, "CaseVariable", 3},
	{0x013, "CaseDefault", 1},
	{0x014, "CaseEnd", 0},
	{0x015, "CaseScenario", 3},
	{0x016, "Wait", 1},
	{0x017, "WaitRandom", 2},
	{0x018, "WaitExecute", 0},
	{0x019, "SetReturnValue", 1},
	{0x01A, "Lock", 1},
	{0x01B, "Unlock", 1},
	{0x01C, "UnlockMain", 0},
	{0x01D, "WaitLockActor", 2},
	{0x01E, "WaitLockObject", 2},
	{0x01F, "WaitLockPerformer", 2},
	{0x020, "ProcessSpecial", 3},
	{0x021, "value_Set", 3},
	{0x022, "value_Add", 3},
	{0x023, "value_Sub", 3},
	{0x024, "value_Div", 3},
	{0x025, "value_Mul", 3},
	{0x026, "value_Copy", 4},
	{0x027, "value_Random", 3},
	{0x028, "value_Clamp", 4},
	{0x029, "value_SetDefault", 1},
	{0x02A, "flag_Set", 2},
	{0x02B, "flag_Clear", 2},
	{0x02C, "flag_Toggle", 2},
	{0x02D, "flag_CopyBit", 4},
	{0x02E, "flag_ResetScenario", 0},
	{0x02F, "flag_ResetAll", 0},
	{0x030, "flag_SetAdventureLog", 1},
	{0x031, "flag_SetDungeonMode", 1},
	{0x032, "flag_SetPerformance", 2},
	{0x033, "actor_SetPosition", 3},
	{0x034, "actor_SetPositionInitial", 3},
	{0x035, "actor_SetPositionOffset", 3},
	{0x036, "actor_Move2Position", 4},
	{0x037, "actor_Slide2Position", 4},
	{0x038, "actor_Turn2Direction", 2},
	{0x039, "actor_TurnDelta", 3},
	{0x03A, "actor_SetHeight", 2},
	{0x03B, "actor_SetAnimation", 2},
	{0x03C, "actor_SetEffect", 2},
	{0x03D, "actor_SetAttribute", 3},
	{0x03E, "actor_SetBlink", 3},
	{0x03F, "actor_SetMovementRange", 5},
	{0x040, "actor_WaitAnimation", 1},
	{0x041, "actor_WaitEffect", 1},
	{0x042, "actor_Enable", 1},
	{0x043, "actor_Disable", 1},
	{0x044, "object_SetPosition", 3},
	{0x045, "object_SetPositionInitial", 3},
	{0x046, "object_SetPositionOffset", 3},
	{0x047, "object_Move2Position", 4},
	{0x048, "object_Slide2Position", 4},
	{0x049, "object_Turn2Direction", 2},
	{0x04A, "object_TurnDelta", 3},
	{0x04B, "object_SetHeight", 2},
	{0x04C, "object_SetAnimation", 2},
	{0x04D, "object_SetEffect", 2},
	{0x04E, "object_SetAttribute", 3},
	{0x04F, "object_SetBlink", 3},
	{0x050, "object_SetMovementRange", 5},
	{0x051, "object_WaitAnimation", 1},
	{0x052, "object_WaitEffect", 1},
	{0x053, "object_Enable", 1},
	{0x054, "object_Disable", 1},
	{0x055, "performer_SetPosition", 3},
	{0x056, "performer_SetPositionInitial", 3},
	{0x057, "performer_SetPositionOffset", 3},
	{0x058, "performer_Move2Position", 4},
	{0x059, "performer_Slide2Position", 4},
	{0x05A, "performer_Turn2Direction", 2},
	{0x05B, "performer_TurnDelta", 3},
	{0x05C, "performer_SetHeight", 2},
	{0x05D, "performer_SetAnimation", 2},
	{0x05E, "performer_SetEffect", 2},
	{0x05F, "performer_SetAttribute", 3},
	{0x060, "performer_SetBlink", 3},
	{0x061, "performer_SetMovementRange", 5},
	{0x062, "performer_WaitAnimation", 1},
	{0x063, "performer_WaitEffect", 1},
	{0x064, "performer_Enable", 1},
	{0x065, "performer_Disable", 1},
	{0x066, "message_Talk", 1},
	{0x067, "message_Talk2", 2},
	{0x068, "message_Monologue", 1},
	{0x069, "message_Mail", 1},
	{0x06A, "message_Mail2", 2},
	{0x06B, "message_Notice", 1},
	{0x06C, "message_Explanation", 1},
	{0x06D, "message_Narration", 1},
	{0x06E, "message_EmptyActor", 0},
	{0x06F, "message_KeyWait", 0},
	{0x070, "message_Close", 0},
	{0x071, "message_CloseEnforce", 0},
	{0x072, "message_SetFace", 3},
	{0x073, "message_SetFacePosition", 1},
	{0x074, "message_FacePositionOffset", 2},
	{0x075, "message_ResetFace", 1},
	{0x076, "message_SetActor", 1},
	{0x077, "message_SetWaitMode", 2},
	{0x078, "message_Swap", 0},
	{0x079, "message_Menu", Variadic},
	{0x07A, "message_SwitchMenu", Variadic},
	{0x07B, "message_SwitchTalk", 1},
	{0x07C, "message_SwitchMonologue", 1},
	{0x07D, "message_SpecialTalk", 3},
	{0x07E, "message_ImitationSound", 1},
	{0x07F, "screen_FadeIn", 2},
	{0x080, "screen_FadeOut", 2},
	{0x081, "screen_FadeInAll", 2},
	{0x082, "screen_FadeOutAll", 2},
	{0x083, "screen_FadeChange", 3},
	{0x084, "screen_FadeChangeAll", 3},
	{0x085, "screen_FlushIn", 3},
	{0x086, "screen_FlushOut", 3},
	{0x087, "screen_White", 2},
	{0x088, "screen_Black", 2},
	{0x089, "screen2_FadeIn", 2},
	{0x08A, "screen2_FadeOut", 2},
	{0x08B, "screen2_FadeInAll", 2},
	{0x08C, "screen2_FadeOutAll", 2},
	{0x08D, "screen2_FadeChange", 3},
	{0x08E, "screen2_FadeChangeAll", 3},
	{0x08F, "screen2_FlushIn", 3},
	{0x090, "screen2_FlushOut", 3},
	{0x091, "screen2_White", 2},
	{0x092, "screen2_Black", 2},
	{0x093, "camera_SetPosition", 2},
	{0x094, "camera_Move2Position", 3},
	{0x095, "camera_Move2Default", 1},
	{0x096, "camera_SetEffect", 3},
	{0x097, "camera_Shake", 2},
	{0x098, "camera_Stop", 0},
	{0x099, "camera_SetMoveSpeed", 1},
	{0x09A, "camera_SetDefault", 0},
	{0x09B, "camera2_SetPosition", 2},
	{0x09C, "camera2_Move2Position", 3},
	{0x09D, "camera2_Move2Default", 1},
	{0x09E, "camera2_SetEffect", 3},
	{0x09F, "camera2_Shake", 2},
	{0x0A0, "camera2_Stop", 0},
	{0x0A1, "camera2_SetMoveSpeed", 1},
	{0x0A2, "camera2_SetDefault", 0},
	{0x0A3, "bgm_Play", 1},
	{0x0A4, "bgm_PlayFadeIn", 2},
	{0x0A5, "bgm_Stop", 0},
	{0x0A6, "bgm_FadeOut", 1},
	{0x0A7, "bgm_ChangeVolume", 2},
	{0x0A8, "bgm_Cont", 0},
	{0x0A9, "bgm_Pause", 1},
	{0x0AA, "bgm2_Play", 1},
	{0x0AB, "bgm2_PlayFadeIn", 2},
	{0x0AC, "bgm2_Stop", 0},
	{0x0AD, "bgm2_FadeOut", 1},
	{0x0AE, "bgm2_ChangeVolume", 2},
	{0x0AF, "bgm2_Cont", 0},
	{0x0B0, "bgm2_Pause", 1},
	{0x0B1, "se_Play", 1},
	{0x0B2, "se_PlayVolume", 2},
	{0x0B3, "se_PlayPan", 2},
	{0x0B4, "se_Stop", 1},
	{0x0B5, "se_FadeOut", 2},
	{0x0B6, "se_ChangeVolume", 2},
	{0x0B7, "se_ChangePan", 2},
	{0x0B8, "back_SetGround", 1},
	{0x0B9, "back_ChangeGround", 1},
	{0x0BA, "back_SetWeather", 1},
	{0x0BB, "back_SetWeatherEffect", 2},
	{0x0BC, "back_SetBanner", 2},
	{0x0BD, "back_SetBanner2", 5},
	{0x0BE, "back_SetEffect", 2},
	{0x0BF, "back_SetDungeonBanner", 0},
	{0x0C0, "back_SetTitleBanner", 0},
	{0x0C1, "supervision_Acting", 1},
	{0x0C2, "supervision_ActingInvisible", 1},
	{0x0C3, "supervision_ExecuteActing", 2},
	{0x0C4, "supervision_ExecuteActingSub", 3},
	{0x0C5, "supervision_ExecuteCommon", 2},
	{0x0C6, "supervision_ExecuteScript", 2},
	{0x0C7, "supervision_LoadStation", 0},
	{0x0C8, "supervision_Remove", 0},
	{0x0C9, "supervision_RemoveActing", 1},
	{0x0CA, "supervision_RemoveCommon", 1},
	{0x0CB, "supervision_SpecialActing", 3},
	{0x0CC, "supervision_Station", 1},
	{0x0CD, "supervision_StationCommon", 1},
	{0x0CE, "supervision_Suspend", 1},
	{0x0CF, "main_EnterAdventure", 1},
	{0x0D0, "main_EnterDungeon", 2},
	{0x0D1, "main_EnterGround", 2},
	{0x0D2, "main_EnterGroundMulti", Variadic},
	{0x0D3, "main_EnterRescueUser", 1},
	{0x0D4, "main_EnterTraining", 1},
	{0x0D5, "main_EnterClear", 0},
	{0x0D6, "main_SetGround", 1},
	{0x0D7, "main_SetDungeonResult", 2},
	{0x0D8, "scenario_Set", 2},
	{0x0D9, "scenario_SetMain", 2},
	{0x0DA, "scenario_SetSub", 2},
	{0x0DB, "scenario_SetSide", 2},
	{0x0DC, "scenario_Calc", 3},
	{0x0DD, "scenario_BranchMain", 3},
	{0x0DE, "scenario_BranchSub", 3},
	{0x0DF, "scenario_BranchSide", 3},
	{0x0E0, "ground_SetName", 1},
	{0x0E1, "ground_SetPlace", 1},
	{0x0E2, "ground_Clean", 0},
	{0x0E3, "ground_Reset", 0},
	{0x0E4, "ground_Map", 1},
	{0x0E5, "item_Get", 2},
	{0x0E6, "item_Set", 2},
	{0x0E7, "item_GetVariable", 2},
	{0x0E8, "item_SetVariable", 2},
	{0x0E9, "item_SetTableData", 2},
	{0x0EA, "dungeon_Select", 1},
	{0x0EB, "dungeon_SetResult", 2},
	{0x0EC, "dungeon_GetResult", 1},
	{0x0ED, "dungeon_Clear", 0},
	{0x0EE, "unit_SetLeader", 1},
	{0x0EF, "unit_SwitchLeader", 1},
	{0x0F0, "unit_ResetLeader", 0},
	{0x0F1, "effect_SetGround", 2},
	{0x0F2, "effect_RemoveGround", 1},
	{0x0F3, "effect_Reset", 0},
	{0x0F4, "window_Open", 2},
	{0x0F5, "window_Close", 1},
	{0x0F6, "window_Move", 3},
	{0x0F7, "window_Resize", 3},
	{0x0F8, "window_SetColor", 2},
	{0x0F9, "time_SetClock", 2},
	{0x0FA, "time_GetClock", 1},
	{0x0FB, "save_Execute", 0},
	{0x0FC, "save_ExecuteCheck", 1},
	{0x0FD, "save_Check", 1},
	{0x0FE, "recruit_Check", 1},
	{0x0FF, "recruit_Execute", 2},
	{0x100, "debug_Assert", 2},
	{0x101, "debug_Print", Variadic},
	{0x102, "debug_PrintFlag", 1},
	{0x103, "debug_PrintScenarioFlag", 1},
	{0x104, "Unk180", 1},
	{0x105, "Unk181", 0},
	{0x106, "Unk182", 3},
	{0x107, "Unk183", 2},
	{0x108, "Unk184", 1},
	{0x109, "Unk185", 0},
	{0x10A, "Unk186", 3},
	{0x10B, "Unk187", 2},
	{0x10C, "Unk188", 1},
	{0x10D, "Unk189", 0},
	{0x10E, "Unk18A", 3},
	{0x10F, "Unk18B", 2},
	{0x110, "Unk18C", 1},
	{0x111, "Unk18D", 0},
	{0x112, "Unk18E", 3},
	{0x113, "Unk18F", 2},
	{0x114, "Unk190", 1},
	{0x115, "Unk191", 0},
	{0x116, "Unk192", 3},
	{0x117, "Unk193", 2},
	{0x118, "Unk194", 1},
	{0x119, "Unk195", 0},
	{0x11A, "Unk196", 3},
	{0x11B, "Unk197", 2},
	{0x11C, "Unk198", 1},
	{0x11D, "Unk199", 0},
	{0x11E, "Unk19A", 3},
	{0x11F, "Unk19B", 2},
	{0x120, "Unk19C", 1},
	{0x121, "Unk19D", 0},
	{0x122, "Unk19E", 3},
	{0x123, "Unk19F", 2},
	{0x124, "Unk1A0", 1},
	{0x125, "Unk1A1", 0},
	{0x126, "Unk1A2", 3},
	{0x127, "Unk1A3", 2},
	{0x128, "Unk1A4", 1},
	{0x129, "Unk1A5", 0},
	{0x12A, "Unk1A6", 3},
	{0x12B, "Unk1A7", 2},
	{0x12C, "Unk1A8", 1},
	{0x12D, "Unk1A9", 0},
	{0x12E, "Unk1AA", 3},
	{0x12F, "Unk1AB", 2},
	{0x130, "Unk1AC", 1},
	{0x131, "Unk1AD", 0},
	{0x132, "Unk1AE", 3},
	{0x133, "Unk1AF", 2},
	{0x134, "Unk1B0", 1},
	{0x135, "Unk1B1", 0},
	{0x136, "Unk1B2", 3},
	{0x137, "Unk1B3", 2},
	{0x138, "Unk1B4", 1},
	{0x139, "Unk1B5", 0},
	{0x13A, "Unk1B6", 3},
	{0x13B, "Unk1B7", 2},
	{0x13C, "Unk1B8", 1},
	{0x13D, "Unk1B9", 0},
	{0x13E, "Unk1BA", 3},
	{0x13F, "Unk1BB", 2},
	{0x140, "Unk1BC", 1},
	{0x141, "Unk1BD", 0},
	{0x142, "Unk1BE", 3},
	{0x143, "Unk1BF", 2},
	{0x144, "Unk1C0", 1},
	{0x145, "Unk1C1", 0},
	{0x146, "Unk1C2", 3},
	{0x147, "Unk1C3", 2},
	{0x148, "Unk1C4", 1},
	{0x149, "Unk1C5", 0},
	{0x14A, "Unk1C6", 3},
	{0x14B, "Unk1C7", 2},
	{0x14C, "Unk1C8", 1},
	{0x14D, "Unk1C9", 0},
	{0x14E, "Unk1CA", 3},
	{0x14F, "Unk1CB", 2},
	{0x150, "Unk1CC", 1},
	{0x151, "Unk1CD", 0},
	{0x152, "Unk1CE", 3},
	{0x153, "Unk1CF", 2},
	{0x154, "Unk1D0", 1},
	{0x155, "Unk1D1", 0},
	{0x156, "Unk1D2", 3},
	{0x157, "Unk1D3", 2},
	{0x158, "Unk1D4", 1},
	{0x159, "Unk1D5", 0},
	{0x15A, "Unk1D6", 3},
	{0x15B, "Unk1D7", 2},
	{0x15C, "Unk1D8", 1},
	{0x15D, "Unk1D9", 0},
	{0x15E, "Unk1DA", 3},
	{0x15F, "Unk1DB", 2},
	{0x160, "Unk1DC", 1},
	{0x161, "Unk1DD", 0},
	{0x162, "Unk1DE", 3},
	{0x163, "Unk1DF", 2},
	{0x164, "Unk1E0", 1},
	{0x165, "Unk1E1", 0},
	{0x166, "Unk1E2", 3},
	{0x167, "Unk1E3", 2},
	{0x168, "Unk1E4", 1},
	{0x169, "Unk1E5", 0},
	{0x16A, "Unk1E6", 3},
	{0x16B, "Unk1E7", 2},
	{0x16C, "Unk1E8", 1},
	{0x16D, "Unk1E9", 0},
	{0x16E, "Unk1EA", 3},
	{0x16F, "Unk1EB", 2},
	{0x170, "Unk1EC", 1},
	{0x171, "Unk1ED", 0},
	{0x172, "Unk1EE", 3},
	{0x173, "Unk1EF", 2},
	{0x174, "Unk1F0", 1},
	{0x175, "Unk1F1", 0},
	{0x176, "Unk1F2", 3},
	{0x177, "Unk1F3", 2},
	{0x178, "Unk1F4", 1},
	{0x179, "Unk1F5", 0},
	{0x17A, "Unk1F6", 3},
	{0x17B, "Unk1F7", 2},
	{0x17C, "Unk1F8", 1},
	{0x17D, "Unk1F9", 0},
	{0x17E, "Unk1FA", 3},
}
